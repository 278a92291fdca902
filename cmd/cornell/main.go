// cornell - Cornell Box Ray Caster
// Casts one ray per pixel into the Cornell box (or a glTF scene) and writes
// the frame as a PNG, optionally showing it in the terminal.
//
// Controls (with -view):
//
//	Esc / Q     - Quit
//	Ctrl+C      - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/cornell/pkg/render"
	"github.com/taigrr/cornell/pkg/scene"
)

var (
	outPath   = flag.String("out", "cornell.png", "Output PNG path (empty to skip)")
	stlPath   = flag.String("stl", "", "Also export the scene triangles as STL")
	modelPath = flag.String("model", "", "Render a glTF/GLB scene instead of the Cornell box")
	shading   = flag.String("shading", "headlamp", "Shading model ("+strings.Join(render.ShaderNames(), "|")+")")
	workers   = flag.Int("workers", 0, "Rows traced in parallel (0 = number of CPUs)")
	width     = flag.Int("width", render.DefaultWidth, "Image width in pixels")
	height    = flag.Int("height", render.DefaultHeight, "Image height in pixels")
	view      = flag.Bool("view", false, "Show the frame in the terminal")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "cornell - Cornell Box Ray Caster\n\n")
		fmt.Fprintf(os.Stderr, "Usage: cornell [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls (with -view):\n")
		fmt.Fprintf(os.Stderr, "  Esc / Q     - Quit\n")
		fmt.Fprintf(os.Stderr, "  Ctrl+C      - Quit\n")
	}
	flag.Parse()

	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("invalid size %dx%d", *width, *height)
	}

	shader, err := render.ShaderByName(*shading)
	if err != nil {
		return err
	}

	sc, name, err := loadScene(*modelPath)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded: %s (%d triangles, %d lights)\n", name, sc.TriangleCount(), len(sc.Lights))

	// Degenerate triangles never intersect; render the rest.
	if err := sc.Validate(); err != nil {
		for _, line := range strings.Split(err.Error(), "\n") {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", line)
		}
	}

	if *stlPath != "" {
		if err := scene.SaveSTL(sc, *stlPath); err != nil {
			return fmt.Errorf("export stl: %w", err)
		}
		fmt.Printf("Wrote %s\n", *stlPath)
	}

	renderer := render.NewRenderer(sc,
		render.WithSize(*width, *height),
		render.WithShader(shader),
		render.WithWorkers(*workers),
	)
	fb := renderer.Render()

	st := renderer.Stats()
	fmt.Printf("Rendered %dx%d with %s shading: %d rays, %d hits in %v (%.0f rays/s)\n",
		fb.Width, fb.Height, *shading, st.Rays, st.Hits, st.Elapsed, st.RaysPerSecond())

	if *outPath != "" {
		if err := fb.SavePNG(*outPath); err != nil {
			return fmt.Errorf("save frame: %w", err)
		}
		fmt.Printf("Wrote %s\n", *outPath)
	}

	if *view {
		return present(fb, fmt.Sprintf("%s · %s · %v", name, *shading, st.Elapsed))
	}
	return nil
}

func loadScene(path string) (*scene.Scene, string, error) {
	if path == "" {
		return scene.CornellBox(), "Cornell box", nil
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".glb", ".gltf":
		sc, err := scene.LoadGLB(path)
		if err != nil {
			return nil, "", fmt.Errorf("load model: %w", err)
		}
		return sc, filepath.Base(path), nil
	default:
		return nil, "", fmt.Errorf("unsupported format: %s (use .glb or .gltf)", ext)
	}
}

// present shows the frame in the terminal until the user quits.
func present(fb *render.Framebuffer, caption string) error {
	term := uv.DefaultTerminal()

	cols, rows, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(cols, rows)

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	// Context for clean shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	resized := make(chan [2]int, 1)
	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				select {
				case resized <- [2]int{ev.Width, ev.Height}:
				case <-ctx.Done():
					return
				}
			case uv.KeyPressEvent:
				if ev.MatchString("escape", "q", "ctrl+c") {
					cancel()
					return
				}
			}
		}
	}()

	draw := func() error {
		term.Erase()
		// Last row is the caption.
		area := uv.Rectangle(image.Rect(0, 0, cols, max(rows-1, 1)))
		fb.Draw(term, area)
		if err := term.Display(); err != nil {
			return fmt.Errorf("display: %w", err)
		}
		drawCaption(cols, rows, caption)
		return nil
	}

	if err := draw(); err != nil {
		cleanup()
		return err
	}

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		case size := <-resized:
			cols, rows = size[0], size[1]
			term.Resize(cols, rows)
			if err := draw(); err != nil {
				cleanup()
				return err
			}
		}
	}
}

// drawCaption writes the caption on the bottom row with ANSI escapes.
func drawCaption(cols, rows int, caption string) {
	const (
		reset     = "\x1b[0m"
		dim       = "\x1b[2m"
		bgBlack   = "\x1b[40m"
		fgWhite   = "\x1b[97m"
		clearLine = "\x1b[2K"
	)

	moveTo := func(row, col int) string {
		return fmt.Sprintf("\x1b[%d;%dH", row, col)
	}

	text := fmt.Sprintf(" %s · Esc to quit ", caption)
	col := max((cols-len([]rune(text)))/2, 1)
	fmt.Print(moveTo(rows, 1) + clearLine)
	fmt.Print(moveTo(rows, col) + bgBlack + fgWhite + dim + text + reset)
}
