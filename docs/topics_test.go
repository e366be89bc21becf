package docs

import (
	"bufio"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// topicsInReadme extracts the topic names listed in readme.md.
func topicsInReadme(t *testing.T) []string {
	t.Helper()

	content, err := GetTopic("readme")
	if err != nil {
		t.Fatalf("failed to read readme topic: %v", err)
	}

	var names []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			names = append(names, strings.TrimSpace(strings.Trim(matches[1], "*`")))
		}
	}
	return names
}

func TestTopics(t *testing.T) {
	// The readme index and the embedded topic files must stay in sync:
	// every listed topic loads, and every topic file is listed.
	listed := topicsInReadme(t)
	if len(listed) == 0 {
		t.Fatal("readme.md lists no topics")
	}

	for _, topic := range listed {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() failed: %v", err)
	}
	for _, name := range all {
		found := false
		for _, l := range listed {
			if l == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in readme.md", name)
		}
	}
}

func TestTopicsAreValidMarkdown(t *testing.T) {
	// Every topic must parse as markdown and open with a level-1 heading,
	// since the topic command renders them straight to the terminal.
	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	all = append(all, "readme")

	for _, name := range all {
		t.Run(name, func(t *testing.T) {
			content, err := GetTopic(name)
			if err != nil {
				t.Fatal(err)
			}
			source := []byte(content)
			root := goldmark.DefaultParser().Parse(text.NewReader(source))

			var firstHeading *ast.Heading
			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if !entering || firstHeading != nil {
					return ast.WalkContinue, nil
				}
				if h, ok := n.(*ast.Heading); ok {
					firstHeading = h
					return ast.WalkStop, nil
				}
				return ast.WalkContinue, nil
			})
			if firstHeading == nil || firstHeading.Level != 1 {
				t.Errorf("topic %q does not start with a level-1 heading", name)
			}
		})
	}
}

func TestGetTopicsStarExpansion(t *testing.T) {
	expanded, err := GetTopics("*")
	if err != nil {
		t.Fatal(err)
	}
	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range all {
		content, err := GetTopic(name)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(expanded, content) {
			t.Errorf("expanded topics miss the content of %q", name)
		}
	}
}

func TestGetTopicUnknown(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("GetTopic() found a topic that does not exist")
	}
}
