package breakdown

import (
	"fmt"
	"io"
	"strings"
)

// Render writes groups as an indented text tree.
func Render(w io.Writer, groups []Group) error {
	for i := range groups {
		if err := renderGroup(w, &groups[i], 0); err != nil {
			return err
		}
	}
	return nil
}

func renderGroup(w io.Writer, group *Group, depth int) error {
	if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), group.Title); err != nil {
		return err
	}
	for _, item := range group.Items {
		if item.Group != nil {
			if err := renderGroup(w, item.Group, depth+1); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth+1), item.Text); err != nil {
			return err
		}
	}
	return nil
}
