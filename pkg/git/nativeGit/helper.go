package nativeGit

import (
	"github.com/go-git/go-git/v5"
	"github.com/pkg/errors"
)

const shortSHALength = 7

// OpenWorkingCopy opens the repository that contains path, walking up
// parent directories the way the git cli does. CI jobs run the tool from
// arbitrary subdirectories of the checkout.
func OpenWorkingCopy(path string) (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, errors.WithMessage(err, "cannot open git working copy")
	}

	return repo, nil
}

// HeadSHA returns the full and abbreviated hash of the current HEAD commit.
func HeadSHA(repo *git.Repository) (string, string, error) {
	head, err := repo.Head()
	if err != nil {
		return "", "", errors.WithMessage(err, "cannot resolve HEAD")
	}

	sha := head.Hash().String()
	return sha, sha[0:shortSHALength], nil
}
