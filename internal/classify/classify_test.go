package classify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewritePath(t *testing.T) {
	got, err := RewritePath("a/b/c/d/e/f/sampleC3_S_2.R_1.fq.gz", "X/")
	require.NoError(t, err)
	assert.Equal(t, "X/sampleC3_S_2.R_1.fq.gz", got)
}

func TestRewritePathKeepsNestedRemainder(t *testing.T) {
	got, err := RewritePath("/mnt/runs/2023/leap/raw/lane1/sub/x.fq.gz", "https://acct.blob/c/")
	require.NoError(t, err)
	// leading "/" yields an empty first segment, so "raw" is the sixth.
	assert.Equal(t, "https://acct.blob/c/lane1/sub/x.fq.gz", got)
}

func TestRewritePathExactlySixSegments(t *testing.T) {
	got, err := RewritePath("a/b/c/d/e/f", "X/")
	require.NoError(t, err)
	assert.Equal(t, "X/", got)
}

func TestRewritePathTooShort(t *testing.T) {
	for _, raw := range []string{"", "a", "a/b/c/d/e"} {
		_, err := RewritePath(raw, "X/")
		var pfe *PathFormatError
		if !errors.As(err, &pfe) {
			t.Fatalf("%q: want PathFormatError, got %v", raw, err)
		}
		if pfe.Path != raw {
			t.Errorf("error path = %q, want %q", pfe.Path, raw)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		raw  string
		want Classification
	}{
		{"a/b/c/d/e/f/sampleC3_S_2.R_1.fq.gz", Classification{Well: "S_2", Mate: "R_1", Matched: true}},
		{"sampleC12_S_7_R_2.fq.gz", Classification{Well: "S_7", Mate: "R_2", Matched: true}},
		{"x/yC1_S_1.RR_1.fq.gz", Classification{Well: "S_1", Mate: "RR_1", Matched: true}},
		{"a/b/c/d/e/f/sampleC3_S_2.R_1.fastq", Classification{}},
		{"a/b/c/d/e/f/sampleC3_S_2.R_1", Classification{}},
		{"sample_S_2.R_1.fq.gz", Classification{}},
		{"sampleC3_S_2.R_1.fq.gz/", Classification{}},
		{"", Classification{}},
	}
	for _, tt := range tests {
		if got := Classify(tt.raw); got != tt.want {
			t.Errorf("Classify(%q) = %+v, want %+v", tt.raw, got, tt.want)
		}
	}
}
