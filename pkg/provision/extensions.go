package provision

import (
	"context"

	"github.com/arthur-debert/devup/pkg/logging"
	"github.com/arthur-debert/devup/pkg/runner"
)

// InstallExtensions installs the extension list into one host editor.
// An absent editor is a warning and a no-op so that each compatible
// editor can be driven independently with the same list. Individual
// install failures are recorded and the batch continues.
func InstallExtensions(ctx context.Context, r runner.Runner, editorCmd string, extensions []string) *StepResult {
	logger := logging.GetLogger("provision.extensions")
	result := &StepResult{Step: "extensions:" + editorCmd}

	if !r.CheckPresence(editorCmd) {
		logger.Warn().
			Str("editor", editorCmd).
			Msg("Editor not found, skipping its extensions")
		result.add(editorCmd, StatusSkipped, nil)
		return result
	}

	for _, ext := range extensions {
		logger.Info().
			Str("editor", editorCmd).
			Str("extension", ext).
			Msg("Installing extension")

		if err := r.Run(ctx, editorCmd, "--install-extension", ext, "--force"); err != nil {
			logger.Warn().
				Err(err).
				Str("extension", ext).
				Msg("Extension install failed, continuing")
			result.add(ext, StatusFailed, err)
			continue
		}
		result.add(ext, StatusInstalled, nil)
	}

	logger.Info().
		Str("editor", editorCmd).
		Int("installed", result.Count(StatusInstalled)).
		Int("failed", result.Failed()).
		Msg("Extension step finished")

	return result
}
