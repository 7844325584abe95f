package model

import "strings"

// BaseName derives an application base name from a git remote url: the
// final path segment, trailing ".git" stripped. An unusable url yields "".
func BaseName(remoteURL string) string {
	name := strings.TrimSpace(remoteURL)
	name = strings.TrimSuffix(name, "/")
	if i := strings.LastIndexAny(name, "/:"); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, ".git")
}
