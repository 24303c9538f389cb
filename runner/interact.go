package runner

import (
	"context"
	"io"
	"os"
	"os/exec"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// RunInteractive runs the solution and an interactor as a connected pair.
// The interactor receives the generated input on stdin first, then the two
// processes talk to each other: interactor stdout feeds solution stdin and
// vice versa. The session passes only when both exit zero.
func (l Language) RunInteractive(ctx context.Context, solution, interactor string, input []byte) (bool, error) {
	return interact(
		exec.CommandContext(ctx, l.Binary(solution)),
		exec.CommandContext(ctx, l.Binary(interactor)),
		input,
	)
}

func interact(solCmd, intCmd *exec.Cmd, input []byte) (bool, error) {
	solIn, err := solCmd.StdinPipe()
	if err != nil {
		return false, errors.Wrap(err, "solution stdin")
	}
	solOut, err := solCmd.StdoutPipe()
	if err != nil {
		return false, errors.Wrap(err, "solution stdout")
	}
	intIn, err := intCmd.StdinPipe()
	if err != nil {
		return false, errors.Wrap(err, "interactor stdin")
	}
	intOut, err := intCmd.StdoutPipe()
	if err != nil {
		return false, errors.Wrap(err, "interactor stdout")
	}

	if err := solCmd.Start(); err != nil {
		return false, errors.Wrapf(err, "starting %s", solCmd.Path)
	}
	if err := intCmd.Start(); err != nil {
		_ = solCmd.Process.Kill()
		_, _ = solCmd.Process.Wait()
		return false, errors.Wrapf(err, "starting %s", intCmd.Path)
	}

	g := new(errgroup.Group)
	g.Go(func() error {
		defer solIn.Close()
		_, err := io.Copy(solIn, intOut)
		return ignoreClosedPipe(err)
	})
	g.Go(func() error {
		defer intIn.Close()
		if _, err := intIn.Write(input); err != nil {
			return ignoreClosedPipe(err)
		}
		_, err := io.Copy(intIn, solOut)
		return ignoreClosedPipe(err)
	})
	copyErr := g.Wait()

	solOK, err := exitOK(solCmd.Wait())
	if err != nil {
		return false, err
	}
	intOK, err := exitOK(intCmd.Wait())
	if err != nil {
		return false, err
	}
	if copyErr != nil {
		return false, errors.Wrap(copyErr, "piping between solution and interactor")
	}
	return solOK && intOK, nil
}

// A peer exiting before the other finishes writing is a normal end of
// session, not a piping failure; the exit statuses tell the real story.
func ignoreClosedPipe(err error) error {
	if err == nil ||
		errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, os.ErrClosed) ||
		errors.Is(err, syscall.EPIPE) {
		return nil
	}
	return err
}

func exitOK(err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return false, nil
	}
	return false, err
}
