package cli

import (
	"bufio"
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"clockface/internal/errors"
	"clockface/internal/face"
	"clockface/internal/log"
	"clockface/internal/render"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Snapshot size limits in pixels.
const (
	minSnapshotSize = 16
	maxSnapshotSize = 4096
)

func init() {
	snapshotCmd.SilenceErrors = true
	snapshotCmd.SilenceUsage = true
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render the clock face to PNG",
	Long: `Render the clock face to a PNG image, using the same layout as the
clock window and the style attributes from --config.

With --frames greater than one, consecutive seconds are rendered into the
directory named by -o as frame-0001.png, frame-0002.png and so on.

Examples:
  # Current time, 256x256, to a file
  clockface snapshot -o now.png

  # A fixed time on a random but repeatable face color
  clockface snapshot --time 10:08:30 --random-color --seed 7 -o tenpast.png

  # Pipe to another program
  clockface snapshot --size 512 -o - | display

  # One minute of frames
  clockface snapshot --time 12:00 --frames 60 -o frames/`,
	Args: cobra.NoArgs,
	RunE: runSnapshot,
}

// Snapshot flags
var (
	snapTime        string
	snapSize        int
	snapRandomColor bool
	snapSeed        uint64
	snapOutput      string
	snapFrames      int
	snapQuiet       bool
)

// snapClock supplies the time when --time is not given.
var snapClock clockwork.Clock = clockwork.NewRealClock()

func init() {
	rootCmd.AddCommand(snapshotCmd)

	snapshotCmd.Flags().StringVarP(&snapTime, "time", "t", "", "Time to show as HH:MM[:SS] (default: now)")
	snapshotCmd.Flags().IntVarP(&snapSize, "size", "s", 256, "Image width and height in pixels")
	snapshotCmd.Flags().BoolVar(&snapRandomColor, "random-color", false, "Paint the face a random color")
	snapshotCmd.Flags().Uint64Var(&snapSeed, "seed", 0, "Seed for --random-color, for repeatable colors")
	snapshotCmd.Flags().StringVarP(&snapOutput, "output", "o", "-", "Output PNG file, directory for --frames, or - for stdout")
	snapshotCmd.Flags().IntVarP(&snapFrames, "frames", "n", 1, "Number of consecutive seconds to render")
	snapshotCmd.Flags().BoolVarP(&snapQuiet, "quiet", "q", false, "Suppress progress output")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	t, err := snapshotTime()
	if err != nil {
		return err
	}
	if snapSize < minSnapshotSize || snapSize > maxSnapshotSize {
		return fmt.Errorf("%w: --size %d outside %d..%d", errors.ErrInvalidSize, snapSize, minSnapshotSize, maxSnapshotSize)
	}
	if snapFrames < 1 {
		return fmt.Errorf("%w: --frames %d", errors.ErrInvalidSize, snapFrames)
	}

	style, err := currentConfig().FaceStyle()
	if err != nil {
		return err
	}
	if snapRandomColor {
		src := face.DefaultSource()
		if cmd.Flags().Changed("seed") {
			src = face.NewSeededSource(snapSeed)
		}
		style.Background = face.RandomColor(src)
	}

	ctx := cmd.Context()
	if snapFrames == 1 {
		return writeSnapshot(ctx, cmd.OutOrStdout(), snapOutput, t, style)
	}
	return writeFrames(ctx, cmd.ErrOrStderr(), snapOutput, t, style)
}

func snapshotTime() (face.TimeOfDay, error) {
	if snapTime == "" {
		return face.TimeOf(snapClock.Now()), nil
	}
	return face.ParseTimeOfDay(snapTime)
}

// writeSnapshot renders one face to path, or to stdout when path is "-".
func writeSnapshot(ctx context.Context, stdout io.Writer, path string, t face.TimeOfDay, style face.FaceStyle) error {
	img, err := render.Snapshot(snapSize, snapSize, t, style)
	if err != nil {
		return err
	}

	if path == "-" {
		if err := ctx.Err(); err != nil {
			return err
		}
		if isTerminal(stdout) {
			return fmt.Errorf("%w: redirect stdout or use -o FILE", errors.ErrTerminalOutput)
		}
		w := bufio.NewWriter(stdout)
		if err := render.EncodePNG(w, img); err != nil {
			return err
		}
		return w.Flush()
	}

	if err := writePNGFile(ctx, path, img); err != nil {
		return err
	}
	log.Info("snapshot written",
		log.String("path", path),
		log.String("time", t.String()),
		log.Int("size", snapSize),
		log.Color("background", uint32(style.Background)))
	return nil
}

// writeFrames renders snapFrames consecutive seconds starting at t into
// the directory dir.
func writeFrames(ctx context.Context, progress io.Writer, dir string, t face.TimeOfDay, style face.FaceStyle) error {
	if dir == "-" {
		return fmt.Errorf("%w: --frames needs -o DIRECTORY", errors.ErrTerminalOutput)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	r := render.NewRenderer()
	defer r.Close()

	reporter := NewReporter(progress, snapQuiet)
	globalReporter.Store(reporter)
	defer globalReporter.Store(nil)

	for i := 0; i < snapFrames; i++ {
		if reporter.IsCancelled() || ctx.Err() != nil {
			reporter.Finish()
			return fmt.Errorf("cancelled after %d of %d frames: %w", i, snapFrames, context.Canceled)
		}

		at := t.Add(i)
		img, err := r.Image(snapSize, snapSize, face.Build(float64(snapSize), float64(snapSize), at, style))
		if err != nil {
			reporter.PrintError("frame %d: %v", i+1, err)
			return err
		}
		if err := writePNGFile(ctx, filepath.Join(dir, frameName(i)), img); err != nil {
			reporter.PrintError("frame %d: %v", i+1, err)
			return errors.Wrap(err, fmt.Sprintf("frame %d", i+1))
		}

		reporter.SetProgress(float32(i+1)/float32(snapFrames), fmt.Sprintf("%d/%d", i+1, snapFrames))
		reporter.SetStatus(at.String())
		reporter.Update()
	}
	reporter.Finish()
	reporter.PrintSuccess("Wrote %d frames to %s", snapFrames, dir)
	log.Info("frames written", log.String("dir", dir), log.Int("frames", snapFrames))
	return nil
}

func frameName(i int) string {
	return fmt.Sprintf("frame-%04d.png", i+1)
}

// writePNGFile encodes img into a temporary file beside path and renames
// it into place. Nothing is left at path when encoding fails or ctx is
// done before the rename.
func writePNGFile(ctx context.Context, path string, img image.Image) error {
	f, err := os.CreateTemp(filepath.Dir(path), ".clockface-*.png")
	if err != nil {
		return err
	}
	tmp := f.Name()

	err = f.Chmod(0644)
	if err == nil {
		w := bufio.NewWriter(f)
		if err = render.EncodePNG(w, img); err == nil {
			err = w.Flush()
		}
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
