// Package git locates the git repository enclosing a directory.
package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/runoshun/tasks/internal/domain"
)

// Client provides repository information.
type Client struct {
	repoRoot string // Main repository root (parent of .git)
	gitDir   string // Common .git directory, shared by linked worktrees
}

// NewClient detects the repository containing dir.
// It handles both regular repositories and linked worktrees.
// Returns domain.ErrNotGitRepository when dir is not inside a non-bare repository.
func NewClient(dir string) (*Client, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, domain.ErrNotGitRepository
		}
		return nil, fmt.Errorf("open repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, git.ErrIsBareRepository) {
			return nil, domain.ErrNotGitRepository
		}
		return nil, fmt.Errorf("open worktree: %w", err)
	}

	workingDir := filepath.Clean(wt.Filesystem.Root())
	gitDir, err := commonGitDir(workingDir)
	if err != nil {
		return nil, err
	}

	return &Client{
		repoRoot: filepath.Dir(gitDir),
		gitDir:   gitDir,
	}, nil
}

// RepoRoot returns the repository root directory.
func (c *Client) RepoRoot() string {
	return c.repoRoot
}

// GitDir returns the common .git directory path.
func (c *Client) GitDir() string {
	return c.gitDir
}

// commonGitDir resolves the .git directory shared by all worktrees.
// In a linked worktree, .git is a file ("gitdir: <path>") and the
// per-worktree directory holds a commondir file pointing back to the main one.
func commonGitDir(workingDir string) (string, error) {
	dotGit := filepath.Join(workingDir, ".git")
	info, err := os.Stat(dotGit)
	if err != nil {
		return "", fmt.Errorf("stat .git: %w", err)
	}
	if info.IsDir() {
		return dotGit, nil
	}

	gitDir, err := readPointer(dotGit, "gitdir: ")
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(gitDir) {
		gitDir = filepath.Join(workingDir, gitDir)
	}

	common, err := readPointer(filepath.Join(gitDir, "commondir"), "")
	if errors.Is(err, os.ErrNotExist) {
		return filepath.Clean(gitDir), nil
	}
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(common) {
		common = filepath.Join(gitDir, common)
	}
	return filepath.Clean(common), nil
}

func readPointer(path, prefix string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	line := strings.TrimSpace(string(data))
	if !strings.HasPrefix(line, prefix) {
		return "", fmt.Errorf("malformed %s", path)
	}
	return strings.TrimPrefix(line, prefix), nil
}
