package core

import (
	"context"

	"github.com/shubhamsWEB/uifinityai/internal/figma"
)

// MockSource serves a canned file response; GetNodes/GetImages answer from
// maps so tests can shape partial results.
type MockSource struct {
	File    *figma.FileResponse
	Nodes   map[string]*figma.Node
	Images  map[string]string
	Err     error
	NodeErr error

	FileCalls    int
	ImageCalls   int
	NodeRequests [][]string
}

func (m *MockSource) GetFile(ctx context.Context, fileKey string) (*figma.FileResponse, error) {
	m.FileCalls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.File, nil
}

func (m *MockSource) GetNodes(ctx context.Context, fileKey string, ids []string) (map[string]*figma.Node, error) {
	m.NodeRequests = append(m.NodeRequests, ids)
	if m.Err != nil {
		return nil, m.Err
	}
	if m.NodeErr != nil {
		return nil, m.NodeErr
	}
	out := map[string]*figma.Node{}
	for _, id := range ids {
		if n, ok := m.Nodes[id]; ok {
			out[id] = n
		}
	}
	return out, nil
}

func (m *MockSource) GetImages(ctx context.Context, fileKey string, ids []string, format string) (map[string]string, error) {
	m.ImageCalls++
	if m.Err != nil {
		return nil, m.Err
	}
	out := map[string]string{}
	for _, id := range ids {
		if u, ok := m.Images[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

// MockLLM returns a fixed response for generation prompts.
type MockLLM struct {
	Response string
	Err      error
	Prompts  []string
}

func (m *MockLLM) Generate(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// MockEmbedder returns one fixed vector for every input and records the
// texts it was asked to embed.
type MockEmbedder struct {
	Vector []float32
	Err    error
	Texts  []string
}

func (m *MockEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	m.Texts = append(m.Texts, text)
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Vector != nil {
		return m.Vector, nil
	}
	return []float32{1, 0}, nil
}
