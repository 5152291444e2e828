package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/untoldecay/mvcs/internal/core"
	"github.com/untoldecay/mvcs/internal/logging"
	"github.com/untoldecay/mvcs/internal/types"
)

// openProject loads the project rooted at the current working directory,
// wiring a rotating log file in the teacher's fashion.
func openProject() (*core.Project, func() error, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, nil, err
	}

	projectDir := filepath.Join(cwd, core.ProjectDirName)
	log, closeLog := logging.RotatingFile(projectDir, os.Getenv("MVCS_DEBUG") != "")

	p, err := core.Load(cwd, core.Options{Logger: log})
	if err != nil {
		closeLog()
		var mvcsErr *types.Error
		if errors.As(err, &mvcsErr) && mvcsErr.Kind == types.KindNotFound {
			return nil, nil, errors.New("not an mvcs project (run `mvcs init` first)")
		}
		return nil, nil, err
	}
	closeAll := func() error {
		closeErr := p.Close()
		closeLog()
		return closeErr
	}
	return p, closeAll, nil
}
