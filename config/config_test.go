package config

import (
	"errors"
	"testing"
)

type mockParser struct {
	parseFunc func(data []byte, target any, path string) error
}

func (m *mockParser) Parse(data []byte, target any, path string) error {
	return m.parseFunc(data, target, path)
}

type mockDataFetcher struct {
	fetchFunc func() ([]byte, error)
}

func (m *mockDataFetcher) Fetch() ([]byte, error) {
	return m.fetchFunc()
}

type logoSection struct {
	Src string
	Alt string
}

type tocSection struct {
	MaxHeadingLevel int
	err             error
}

func (c *tocSection) SetDefaults() bool {
	if c.MaxHeadingLevel != 0 {
		return false
	}

	c.MaxHeadingLevel = 3

	return true
}

func (c *tocSection) Validate() error {
	return c.err
}

func staticFetcher(data string) *mockDataFetcher {
	return &mockDataFetcher{
		fetchFunc: func() ([]byte, error) {
			return []byte(data), nil
		},
	}
}

func noopParser() *mockParser {
	return &mockParser{
		parseFunc: func(_ []byte, _ any, _ string) error {
			return nil
		},
	}
}

func TestProvider_Success(t *testing.T) {
	t.Parallel()

	target := &logoSection{}
	parser := &mockParser{
		parseFunc: func(data []byte, target any, path string) error {
			logo, ok := target.(*logoSection)
			if !ok {
				return errors.New("invalid target type")
			}

			if path != "logo" {
				return errors.New("unexpected path " + path)
			}

			logo.Src = string(data)

			return nil
		},
	}

	result, err := Provider(target, "logo")(parser, staticFetcher("./logo.svg"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result != target {
		t.Error("expected result to be the same as target")
	}

	if result.Src != "./logo.svg" {
		t.Errorf("expected Src to be './logo.svg', got %q", result.Src)
	}
}

func TestProvider_AppliesDefaultsBeforeValidation(t *testing.T) {
	t.Parallel()

	target := &tocSection{}

	result, err := Load(target, "tableOfContents", noopParser(), staticFetcher("{}"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.MaxHeadingLevel != 3 {
		t.Errorf("expected default MaxHeadingLevel 3, got %d", result.MaxHeadingLevel)
	}
}

func TestProvider_KeepsExplicitValues(t *testing.T) {
	t.Parallel()

	target := &tocSection{MaxHeadingLevel: 4}

	result, err := Load(target, "", noopParser(), staticFetcher("{}"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.MaxHeadingLevel != 4 {
		t.Errorf("expected MaxHeadingLevel 4, got %d", result.MaxHeadingLevel)
	}
}

func TestProvider_Errors(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("fetch failed")
	parseErr := errors.New("parse failed")
	validationErr := errors.New("validation failed")

	tests := []struct {
		name      string
		fetchFunc func() ([]byte, error)
		parseFunc func(data []byte, target any, path string) error
		targetErr error
		wantErr   error
		wantStage error
	}{
		{
			name: "fetch error",
			fetchFunc: func() ([]byte, error) {
				return nil, fetchErr
			},
			parseFunc: func(_ []byte, _ any, _ string) error {
				return nil
			},
			wantErr:   fetchErr,
			wantStage: ErrFetch,
		},
		{
			name: "parse error",
			fetchFunc: func() ([]byte, error) {
				return []byte("data"), nil
			},
			parseFunc: func(_ []byte, _ any, _ string) error {
				return parseErr
			},
			wantErr:   parseErr,
			wantStage: ErrParse,
		},
		{
			name: "validation error",
			fetchFunc: func() ([]byte, error) {
				return []byte("data"), nil
			},
			parseFunc: func(_ []byte, _ any, _ string) error {
				return nil
			},
			targetErr: validationErr,
			wantErr:   validationErr,
			wantStage: ErrValidate,
		},
	}

	for _, testInfo := range tests {
		t.Run(testInfo.name, func(t *testing.T) {
			t.Parallel()

			target := &tocSection{err: testInfo.targetErr}
			parser := &mockParser{parseFunc: testInfo.parseFunc}
			fetcher := &mockDataFetcher{fetchFunc: testInfo.fetchFunc}

			result, err := Provider(target, "tableOfContents")(parser, fetcher)

			if result != nil {
				t.Error("expected result to be nil")
			}

			if err == nil {
				t.Fatal("expected error, got nil")
			}

			if !errors.Is(err, testInfo.wantErr) {
				t.Errorf("expected error to wrap %v, got %v", testInfo.wantErr, err)
			}

			if !errors.Is(err, testInfo.wantStage) {
				t.Errorf("expected error to wrap stage %v, got %v", testInfo.wantStage, err)
			}
		})
	}
}
