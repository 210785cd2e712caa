package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Phazertron/concour-bench/internal/config"
	apperrors "github.com/Phazertron/concour-bench/internal/errors"
)

// PromptConfig interactively asks for the main benchmark parameters,
// keeping the current value of each field as the default. Invalid input
// re-prompts; end of input aborts.
func PromptConfig(r io.Reader, w io.Writer, cfg *config.Config) error {
	in := bufio.NewScanner(r)

	var err error
	if cfg.ArrayLength, err = promptInt(in, w, "Array length",
		cfg.ArrayLength, config.MinArrayLength, maxPromptValue); err != nil {
		return err
	}
	if cfg.NumProcesses, err = promptInt(in, w, "Worker processes",
		cfg.NumProcesses, config.MinWorkers, config.MaxWorkers); err != nil {
		return err
	}
	if cfg.NumThreads, err = promptInt(in, w, "Worker threads",
		cfg.NumThreads, config.MinWorkers, config.MaxWorkers); err != nil {
		return err
	}
	if cfg.Iterations, err = promptInt(in, w, "Iterations per mode",
		cfg.Iterations, config.MinIterations, config.MaxIterations); err != nil {
		return err
	}
	return nil
}

// maxPromptValue bounds interactive numeric input; it only guards against
// typos, the real limits are enforced by config validation.
const maxPromptValue = 1 << 40

func promptInt(in *bufio.Scanner, w io.Writer, label string, def, min, max int) (int, error) {
	for {
		fmt.Fprintf(w, "%s [%d]: ", label, def)
		if !in.Scan() {
			if err := in.Err(); err != nil {
				return 0, apperrors.WrapError(err, "reading input")
			}
			return 0, apperrors.NewConfigError("input closed during prompt for %s", label)
		}

		line := strings.TrimSpace(in.Text())
		if line == "" {
			return def, nil
		}

		value, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(w, "Please enter a whole number.\n")
			continue
		}
		if value < min || value > max {
			fmt.Fprintf(w, "Value must be between %d and %d.\n", min, max)
			continue
		}
		return value, nil
	}
}
