package provision

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/devup/pkg/errors"
	"github.com/arthur-debert/devup/pkg/logging"
	"github.com/arthur-debert/devup/pkg/runner"
)

// CloneRepos clones every repository named in listFile into targetDir.
// A missing list file is normal: the step logs and returns without
// creating the target directory. Blank lines are ignored; each clone is
// independent and a failure never blocks the remaining entries.
func CloneRepos(ctx context.Context, r runner.Runner, listFile, targetDir string) (*StepResult, error) {
	logger := logging.GetLogger("provision.clone")
	result := &StepResult{Step: "clone"}

	if _, err := os.Stat(listFile); os.IsNotExist(err) {
		logger.Info().
			Str("path", listFile).
			Msg("No repository list file, nothing to clone")
		return result, nil
	}

	data, err := os.ReadFile(listFile)
	if err != nil {
		return result, errors.Wrapf(err, errors.ErrFileAccess,
			"failed to read repository list %s", listFile)
	}

	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return result, errors.Wrapf(err, errors.ErrDirCreate,
			"failed to create clone directory %s", targetDir)
	}

	for _, line := range strings.Split(string(data), "\n") {
		repo := strings.TrimSpace(line)
		if repo == "" {
			continue
		}

		dest := filepath.Join(targetDir, repoDirName(repo))
		logger.Info().
			Str("repo", repo).
			Str("dest", dest).
			Msg("Cloning repository")

		if err := r.Run(ctx, "git", "clone", repo, dest); err != nil {
			logger.Warn().
				Err(err).
				Str("repo", repo).
				Msg("Clone failed, continuing with remaining repositories")
			result.add(repo, StatusFailed, err)
			continue
		}
		result.add(repo, StatusInstalled, nil)
	}

	logger.Info().
		Int("cloned", result.Count(StatusInstalled)).
		Int("failed", result.Failed()).
		Msg("Clone step finished")

	return result, nil
}

// repoDirName derives the destination directory name from a repository
// reference: the final path segment with a trailing .git stripped.
// Handles both URL and scp-like forms (git@host:user/repo.git).
func repoDirName(repo string) string {
	name := strings.TrimSuffix(repo, "/")
	if i := strings.LastIndexAny(name, "/:"); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, ".git")
}
