// Package gitinfo reads the current branch straight from .git/HEAD without
// running git.
package gitinfo

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

var errNoGitDir = errors.New("git dir not found")

// Branch returns the checked out branch of the worktree containing path, a
// "detached:<sha>" marker, or "" outside a worktree.
func Branch(path string) string {
	gitDir, err := findGitDir(path)
	if err != nil || gitDir == "" {
		return ""
	}
	branch, err := readHead(gitDir)
	if err != nil {
		return ""
	}
	return branch
}

// Root returns the worktree root containing path, or "".
func Root(path string) string {
	gitDir, err := findGitDir(path)
	if err != nil || gitDir == "" {
		return ""
	}
	return filepath.Dir(gitDir)
}

func findGitDir(path string) (string, error) {
	start, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(start)
	if err != nil {
		// A file that does not exist yet still belongs to its directory's repo.
		start = filepath.Dir(start)
		if info, err = os.Stat(start); err != nil {
			return "", err
		}
	}
	if !info.IsDir() {
		start = filepath.Dir(start)
	}
	for {
		gitPath := filepath.Join(start, ".git")
		if info, err := os.Stat(gitPath); err == nil {
			if info.IsDir() {
				return gitPath, nil
			}
			if info.Mode().IsRegular() {
				dir, err := readGitFile(start, gitPath)
				if err != nil {
					return "", err
				}
				if dir != "" {
					return dir, nil
				}
			}
		}
		parent := filepath.Dir(start)
		if parent == start {
			break
		}
		start = parent
	}
	return "", errNoGitDir
}

// readGitFile resolves a "gitdir: <path>" file as used by worktrees and submodules.
func readGitFile(base, gitPath string) (string, error) {
	data, err := os.ReadFile(gitPath)
	if err != nil {
		return "", err
	}
	line := strings.TrimSpace(string(data))
	const prefix = "gitdir:"
	if !strings.HasPrefix(line, prefix) {
		return "", nil
	}
	dir := strings.TrimSpace(strings.TrimPrefix(line, prefix))
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(base, dir)
	}
	return dir, nil
}

func readHead(gitDir string) (string, error) {
	headPath := filepath.Join(gitDir, "HEAD")
	f, err := os.Open(headPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return "", errors.New("empty HEAD")
	}
	line := strings.TrimSpace(scanner.Text())
	const refPrefix = "ref:"
	if strings.HasPrefix(line, refPrefix) {
		ref := strings.TrimSpace(strings.TrimPrefix(line, refPrefix))
		return strings.TrimPrefix(ref, "refs/heads/"), nil
	}
	if len(line) >= 7 {
		return "detached:" + line[:7], nil
	}
	return "detached", nil
}
