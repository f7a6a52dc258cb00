package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Nakamura9310/snapmark/app"
	"github.com/Nakamura9310/snapmark/domain/capture"
	"github.com/Nakamura9310/snapmark/domain/geometry"
	"github.com/Nakamura9310/snapmark/editor"
	"github.com/Nakamura9310/snapmark/export"
	"github.com/Nakamura9310/snapmark/images"
)

var shotFlags struct {
	display   int
	drag      string
	region    string
	rects     []string
	texts     []string
	script    string
	out       string
	format    string
	quality   int
	clipboard bool
	preview   string
}

var shotCmd = &cobra.Command{
	Use:   "shot",
	Short: "Capture a region, annotate it and export the result",
	Long: `Capture a display region and export it with annotations.

The region comes from --drag (two desktop-space corner points, driving the
same selection flow as an interactive overlay), from --region (a rectangle
local to --display), or defaults to the whole of --display.

Annotations are laid in order: each --rect and --text flag, then the steps
of a --script YAML file.`,
	Example: `  snapmark shot --drag 100,100:700,500 -o grab.png
  snapmark shot --display 1 --region 0,0,800,600 --rect 20,20,200,80 --text "24,28,fix this" --clipboard
  snapmark shot --script steps.yaml --format jpeg -o report`,
	RunE: runShot,
}

func init() {
	rootCmd.AddCommand(shotCmd)

	shotCmd.Flags().IntVar(&shotFlags.display, "display", 0, "Display index to capture from")
	shotCmd.Flags().StringVar(&shotFlags.drag, "drag", "", "Selection drag as x1,y1:x2,y2 in desktop coordinates")
	shotCmd.Flags().StringVar(&shotFlags.region, "region", "", "Capture region as x,y,w,h local to --display")
	shotCmd.Flags().StringArrayVar(&shotFlags.rects, "rect", nil, "Rectangle highlight as x,y,w,h (repeatable)")
	shotCmd.Flags().StringArrayVar(&shotFlags.texts, "text", nil, "Text label as x,y,content (repeatable)")
	shotCmd.Flags().StringVar(&shotFlags.script, "script", "", "YAML annotation script to apply")
	shotCmd.Flags().StringVarP(&shotFlags.out, "out", "o", "", "Output file path (default: timestamped name in save dir)")
	shotCmd.Flags().StringVar(&shotFlags.format, "format", "", "Output format: png, jpeg, bmp (default: config)")
	shotCmd.Flags().IntVar(&shotFlags.quality, "quality", 0, "JPEG quality 1-100 (default: config)")
	shotCmd.Flags().BoolVar(&shotFlags.clipboard, "clipboard", false, "Also copy the result to the clipboard")
	shotCmd.Flags().StringVar(&shotFlags.preview, "preview", "", "Write a small PNG preview to this path")
}

func runShot(cmd *cobra.Command, args []string) error {
	c := app.BuildContainer(cfg)
	defer c.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	displays, err := c.Provider.Displays()
	if err != nil {
		return err
	}
	region, err := resolveRegion(c, displays)
	if err != nil {
		return err
	}
	if _, err := c.Session.Capture(ctx, region); err != nil {
		return err
	}
	if err := annotate(c.Session); err != nil {
		return err
	}

	out, err := c.Session.Render(ctx)
	if err != nil {
		return err
	}

	name := cfg.Format
	if shotFlags.format != "" {
		name = shotFlags.format
	}
	format, err := export.ParseFormat(name)
	if err != nil {
		return err
	}
	quality := cfg.JPEGQuality
	if shotFlags.quality > 0 {
		quality = shotFlags.quality
	}

	path := shotFlags.out
	if path == "" {
		path = filepath.Join(cfg.SaveDir, "snapmark-"+time.Now().Format("20060102-150405"))
	}
	final, err := export.WriteFile(path, out, format, export.Options{JPEGQuality: quality})
	if err != nil {
		return err
	}
	c.Logger.Info("screenshot saved", "path", final, "format", format.String(), "annotations", c.Session.Store().Len())

	if shotFlags.clipboard || cfg.CopyToClipboard {
		if err := export.WriteClipboard(out); err != nil {
			c.Logger.Warn("clipboard copy failed", "error", err)
		}
	}
	if shotFlags.preview != "" {
		if err := os.WriteFile(shotFlags.preview, images.Thumbnail(out, 320, 320), 0o644); err != nil {
			c.Logger.Warn("preview write failed", "error", err)
		}
	}
	if err := c.Notifier.Show("Snapmark", fmt.Sprintf("Saved %s", filepath.Base(final))); err != nil {
		c.Logger.Warn("notification failed", "error", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), final)
	return nil
}

// resolveRegion turns the region flags into a capture.Region. A --drag spec
// drives the selection machine exactly like an interactive overlay would.
func resolveRegion(c *app.Container, displays []capture.DisplayInfo) (capture.Region, error) {
	if shotFlags.drag != "" {
		p1, p2, err := parseDrag(shotFlags.drag)
		if err != nil {
			return capture.Region{}, err
		}
		display, ok := capture.DisplayAt(displays, p1)
		if !ok {
			return capture.Region{}, fmt.Errorf("point %.0f,%.0f is not on any display", p1.X, p1.Y)
		}
		// The machine sees display-local coordinates, like overlay input.
		local1 := geometry.Pt(p1.X-display.Bounds.MinX, p1.Y-display.Bounds.MinY)
		local2 := geometry.Pt(p2.X-display.Bounds.MinX, p2.Y-display.Bounds.MinY)
		m := c.Session.BeginSelection()
		m.PointerDown(local1, display)
		m.PointerMove(local2)
		m.PointerUp(local2)
		region, ok := m.Region()
		if !ok {
			return capture.Region{}, fmt.Errorf("selection %q has no area", shotFlags.drag)
		}
		return region, nil
	}

	if shotFlags.display < 0 || shotFlags.display >= len(displays) {
		return capture.Region{}, fmt.Errorf("%w: display %d of %d", capture.ErrDisplayOutOfRange, shotFlags.display, len(displays))
	}
	display := displays[shotFlags.display]

	bounds := geometry.FromPosSize(geometry.Pt(0, 0), geometry.Size{W: display.Bounds.Width(), H: display.Bounds.Height()})
	if shotFlags.region != "" {
		r, err := parseRect(shotFlags.region)
		if err != nil {
			return capture.Region{}, err
		}
		bounds = r
	}
	return capture.NewRegion(bounds, display)
}

func annotate(s *editor.Session) error {
	for _, spec := range shotFlags.rects {
		r, err := parseRect(spec)
		if err != nil {
			return err
		}
		s.AddRectangle(geometry.Pt(r.MinX, r.MinY), geometry.Size{W: r.Width(), H: r.Height()})
	}
	for _, spec := range shotFlags.texts {
		p, content, err := parseText(spec)
		if err != nil {
			return err
		}
		s.PlaceText(p, content)
	}
	if shotFlags.script != "" {
		f, err := os.Open(shotFlags.script)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		script, err := editor.LoadScript(f)
		if err != nil {
			return err
		}
		if err := s.Apply(script); err != nil {
			return err
		}
	}
	return nil
}

func parseDrag(spec string) (geometry.Point, geometry.Point, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 2 {
		return geometry.Point{}, geometry.Point{}, fmt.Errorf("drag %q: want x1,y1:x2,y2", spec)
	}
	p1, err := parsePoint(parts[0])
	if err != nil {
		return geometry.Point{}, geometry.Point{}, fmt.Errorf("drag %q: %w", spec, err)
	}
	p2, err := parsePoint(parts[1])
	if err != nil {
		return geometry.Point{}, geometry.Point{}, fmt.Errorf("drag %q: %w", spec, err)
	}
	return p1, p2, nil
}

func parsePoint(spec string) (geometry.Point, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 2 {
		return geometry.Point{}, fmt.Errorf("point %q: want x,y", spec)
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errX != nil || errY != nil {
		return geometry.Point{}, fmt.Errorf("point %q: not numeric", spec)
	}
	return geometry.Pt(x, y), nil
}

func parseRect(spec string) (geometry.Rect, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 4 {
		return geometry.Rect{}, fmt.Errorf("rect %q: want x,y,w,h", spec)
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return geometry.Rect{}, fmt.Errorf("rect %q: not numeric", spec)
		}
		vals[i] = v
	}
	if vals[2] <= 0 || vals[3] <= 0 {
		return geometry.Rect{}, fmt.Errorf("rect %q: width and height must be positive", spec)
	}
	return geometry.FromPosSize(geometry.Pt(vals[0], vals[1]), geometry.Size{W: vals[2], H: vals[3]}), nil
}

func parseText(spec string) (geometry.Point, string, error) {
	parts := strings.SplitN(spec, ",", 3)
	if len(parts) != 3 || parts[2] == "" {
		return geometry.Point{}, "", fmt.Errorf("text %q: want x,y,content", spec)
	}
	p, err := parsePoint(parts[0] + "," + parts[1])
	if err != nil {
		return geometry.Point{}, "", fmt.Errorf("text %q: %w", spec, err)
	}
	return p, parts[2], nil
}
