package walker

import "fmt"

// Box-drawing glyphs of the tree listing.
const (
	BranchMiddle   = "├── "
	BranchLast     = "└── "
	PrefixContinue = "│   "
	PrefixBlank    = "    "
)

const permissionDeniedText = "[Permission Denied]"

// FormatEntry renders one visited entry.
func FormatEntry(prefix, name string, last bool) string {
	if last {
		return prefix + BranchLast + name
	}
	return prefix + BranchMiddle + name
}

// ChildPrefix extends prefix for the children of an entry.
func ChildPrefix(prefix string, last bool) string {
	if last {
		return prefix + PrefixBlank
	}
	return prefix + PrefixContinue
}

func PermissionDeniedLine(prefix string) string {
	return prefix + permissionDeniedText
}

func NotFoundLine(prefix, path string) string {
	return fmt.Sprintf("%sError: Directory '%s' not found!", prefix, path)
}

func NotDirectoryLine(prefix, path string) string {
	return fmt.Sprintf("%sError: '%s' is not a directory!", prefix, path)
}

func ReadErrorLine(prefix, path string, err error) string {
	return fmt.Sprintf("%sError: cannot read '%s': %v", prefix, path, err)
}
