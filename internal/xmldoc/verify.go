package xmldoc

import "fmt"

// VerifyFile parses the document at path and reports structural details:
// root tag, optional metadata section, user-element count, and how many of
// those carry an id attribute. A parse failure is the only error case.
func VerifyFile(path string) ([]string, error) {
	root, err := ParseFile(path)
	if err != nil {
		return nil, err
	}

	users := root.FindAll("user")

	details := []string{fmt.Sprintf("✓ Root element: <%s>", root.Tag)}
	if len(root.FindAll("metadata")) > 0 {
		details = append(details, "✓ Metadata section found")
	}
	details = append(details, fmt.Sprintf("✓ Found %d user elements", len(users)))

	validUsers := 0
	for _, u := range users {
		if u.Attr["id"] != "" {
			validUsers++
		}
	}
	details = append(details, fmt.Sprintf("✓ %d users have valid ID attributes", validUsers))

	return details, nil
}
