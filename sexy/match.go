package sexy

import (
	"fmt"
	"strconv"
)

// Match compares actual against pattern and describes the first
// difference. In a pattern the symbol _ matches any single datum and a
// trailing ... matches any remaining list items.
func Match(pattern, actual *Node) error {
	return match(pattern, actual, "root")
}

func match(pattern, actual *Node, path string) error {
	if pattern.IsWildcard() {
		return nil
	}
	if pattern.Type != actual.Type {
		return fmt.Errorf("at %s: expected %s %s, got %s %s", path, pattern.Type, pattern, actual.Type, actual)
	}

	switch pattern.Type {
	case NodeList:
		return matchList(pattern, actual, path)
	case NodeNumber:
		if !numbersEqual(pattern.Text, actual.Text) {
			return fmt.Errorf("at %s: expected %s, got %s", path, pattern.Text, actual.Text)
		}
	default:
		if pattern.Text != actual.Text {
			return fmt.Errorf("at %s: expected %s, got %s", path, pattern, actual)
		}
	}
	return nil
}

func matchList(pattern, actual *Node, path string) error {
	for i, p := range pattern.Items {
		if p.Type == NodeEllipsis {
			if i != len(pattern.Items)-1 {
				return fmt.Errorf("at %s: '...' must be the last item of a pattern list", path)
			}
			return nil
		}
		if i >= len(actual.Items) {
			return fmt.Errorf("at %s: expected %d items, got %d in %s", path, len(pattern.Items), len(actual.Items), actual)
		}
		if err := match(p, actual.Items[i], childPath(path, actual, i)); err != nil {
			return err
		}
	}
	if len(actual.Items) > len(pattern.Items) {
		return fmt.Errorf("at %s: expected %d items, got %d in %s", path, len(pattern.Items), len(actual.Items), actual)
	}
	return nil
}

// childPath names item i of list, using the list's head symbol when it has
// one: root/binary[2].
func childPath(path string, list *Node, i int) string {
	if head := list.Head(); head != "" {
		return fmt.Sprintf("%s/%s[%d]", path, head, i)
	}
	return fmt.Sprintf("%s[%d]", path, i)
}

// numbersEqual compares numerically so that 1.50 matches 1.5.
func numbersEqual(a, b string) bool {
	if a == b {
		return true
	}
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	return errA == nil && errB == nil && fa == fb
}
