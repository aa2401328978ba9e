package docs

import (
	"os"
	"regexp"
	"slices"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// This test keeps the documentation in sync: every topic file must be listed
// in readme.md, and every topic linked from readme.md must load.

var topicLinkRE = regexp.MustCompile(`^([a-z]+)\.md$`)

// readmeTopics extracts the topic names linked from readme.md.
func readmeTopics(t *testing.T) []string {
	t.Helper()

	content, err := os.ReadFile("readme.md")
	if err != nil {
		t.Fatalf("failed to read readme.md: %v", err)
	}

	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var topics []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		link, ok := n.(*ast.Link)
		if !ok {
			return ast.WalkContinue, nil
		}
		if m := topicLinkRE.FindStringSubmatch(string(link.Destination)); m != nil {
			topics = append(topics, m[1])
		}
		return ast.WalkContinue, nil
	})
	return topics
}

func TestReadmeListsEveryTopic(t *testing.T) {
	listed := readmeTopics(t)

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() failed: %v", err)
	}

	for _, topic := range all {
		if !slices.Contains(listed, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestEveryListedTopicLoads(t *testing.T) {
	for _, topic := range readmeTopics(t) {
		content, err := GetTopic(topic)
		if err != nil {
			t.Errorf("GetTopic(%q) failed: %v", topic, err)
		}
		if content == "" {
			t.Errorf("GetTopic(%q) returned empty content", topic)
		}
	}
}

func TestGetTopicsExpandsStar(t *testing.T) {
	all, err := GetTopics("*")
	if err != nil {
		t.Fatalf("GetTopics(*) failed: %v", err)
	}
	one, err := GetTopic("wallets")
	if err != nil {
		t.Fatalf("GetTopic(wallets) failed: %v", err)
	}
	if len(all) <= len(one) {
		t.Errorf("GetTopics(*) should include all topics, got %d bytes", len(all))
	}
}

func TestGetTopicUnknown(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("expected an error for an unknown topic")
	}
}
