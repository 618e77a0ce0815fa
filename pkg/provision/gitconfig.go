package provision

import (
	"context"
	"sort"

	"github.com/arthur-debert/devup/pkg/config"
	"github.com/arthur-debert/devup/pkg/logging"
	"github.com/arthur-debert/devup/pkg/runner"
)

// ApplyGitConfig configures git's global settings. Identity
// (user.name/user.email) is applied only when both values are set;
// the alias table is applied whenever git is present, independent of
// identity completeness. With git absent the whole step is a warning
// and a no-op.
func ApplyGitConfig(ctx context.Context, r runner.Runner, identity config.Identity, aliases map[string]string) *StepResult {
	logger := logging.GetLogger("provision.gitconfig")
	result := &StepResult{Step: "gitconfig"}

	if !r.CheckPresence("git") {
		logger.Warn().Msg("git not found, skipping git configuration")
		result.add("git", StatusSkipped, nil)
		return result
	}

	if identity.Complete() {
		for _, kv := range [][2]string{
			{"user.name", identity.Name},
			{"user.email", identity.Email},
		} {
			if err := r.Run(ctx, "git", "config", "--global", kv[0], kv[1]); err != nil {
				logger.Warn().Err(err).Str("key", kv[0]).Msg("Failed to set git identity")
				result.add(kv[0], StatusFailed, err)
				continue
			}
			result.add(kv[0], StatusInstalled, nil)
		}
	} else {
		logger.Warn().Msg("Git identity not configured: set git.name and git.email in the config file")
		result.add("identity", StatusSkipped, nil)
	}

	// Aliases are sorted for stable ordering in logs and reports.
	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := r.Run(ctx, "git", "config", "--global", "alias."+name, aliases[name]); err != nil {
			logger.Warn().Err(err).Str("alias", name).Msg("Failed to set git alias")
			result.add("alias."+name, StatusFailed, err)
			continue
		}
		result.add("alias."+name, StatusInstalled, nil)
	}

	logger.Info().
		Bool("identity", identity.Complete()).
		Int("aliases", len(names)).
		Int("failed", result.Failed()).
		Msg("Git configuration finished")

	return result
}
