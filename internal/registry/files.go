package registry

import "github.com/vovakirdan/jumper/internal/level"

// LoadDir adds every level file under root. Files that fail to parse or
// reuse a registered ID are skipped and reported as issues.
func LoadDir(root string) (added int, issues []level.LoadIssue, err error) {
	levels, issues, err := level.NewLoader(root).LoadAll()
	if err != nil {
		return 0, nil, err
	}

	for _, l := range levels {
		if err := Add(l); err != nil {
			issues = append(issues, level.LoadIssue{Path: l.Source, Err: err})
			continue
		}
		added++
	}
	return added, issues, nil
}
