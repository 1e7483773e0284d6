package parser

import (
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		path string
		want Language
	}{
		{"main.go", LangGo},
		{"lib.rs", LangRust},
		{"script.py", LangPython},
		{"app.ts", LangTypeScript},
		{"app.tsx", LangTSX},
		{"index.js", LangJavaScript},
		{"component.jsx", LangTSX},
		{"Main.java", LangJava},
		{"util.c", LangC},
		{"util.h", LangC},
		{"engine.cpp", LangCPP},
		{"README.md", LangUnknown},
		{"Makefile", LangUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLanguage(tt.path))
		})
	}
}

func TestParse(t *testing.T) {
	p := New()
	defer p.Close()

	source := []byte("package main\n\nfunc main() {}\n")
	result, err := p.Parse(source, LangGo, "main.go")
	require.NoError(t, err)
	require.NotNil(t, result.Tree)

	root := result.Tree.RootNode()
	assert.Equal(t, "source_file", root.Type())
	assert.Equal(t, LangGo, result.Language)
	assert.Equal(t, "main.go", result.Path)
}

func TestParseUnsupportedLanguage(t *testing.T) {
	p := New()
	defer p.Close()

	_, err := p.Parse([]byte("x"), LangUnknown, "x.bin")
	require.Error(t, err)
}

func TestGetNodeText(t *testing.T) {
	p := New()
	defer p.Close()

	source := []byte("package main")
	result, err := p.Parse(source, LangGo, "main.go")
	require.NoError(t, err)

	root := result.Tree.RootNode()
	assert.Equal(t, "package main", GetNodeText(root, source))
	assert.Equal(t, "", GetNodeText(nil, source))
}

func TestWalkVisitsAllNodes(t *testing.T) {
	p := New()
	defer p.Close()

	source := []byte("package main\n\nfunc add(a, b int) int { return a + b }\n")
	result, err := p.Parse(source, LangGo, "main.go")
	require.NoError(t, err)

	var count int
	Walk(result.Tree.RootNode(), source, func(node *sitter.Node, src []byte) bool {
		count++
		return true
	})
	assert.Greater(t, count, 10)
}
