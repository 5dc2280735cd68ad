package optdeps

import "strings"

// Locate returns the optional dependency block of text with its label and
// separator removed.
//
// The last occurrence of the optional label is used because an earlier
// field (a description, say) may contain the same words. The block ends at
// the first terminator label after it. none is true when the block holds
// only the "no dependencies" sentinel; block is empty in that case.
func (f Format) Locate(text string) (block string, none bool, err error) {
	start := strings.LastIndex(text, f.OptionalLabel)
	if start < 0 {
		return "", false, &MalformedMetadataError{Missing: f.OptionalLabel}
	}
	start += len(f.OptionalLabel)

	end := strings.Index(text[start:], f.TerminatorLabel)
	if end < 0 {
		return "", false, &MalformedMetadataError{Missing: f.TerminatorLabel}
	}

	block = strings.TrimLeft(text[start:start+end], " \t")
	block = strings.TrimPrefix(block, f.Separator)

	if strings.TrimSpace(block) == f.NoneSentinel {
		return "", true, nil
	}
	return block, false, nil
}
