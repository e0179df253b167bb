// internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = "../.."
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	bans := map[string][]string{
		"leapfastq/internal/classify": {
			"leapfastq/internal/manifest", "leapfastq/internal/aggregate",
			"leapfastq/internal/writers", "leapfastq/internal/pipeline",
			"leapfastq/internal/config", "leapfastq/internal/cli", "leapfastq/internal/app",
			"leapfastq/cmd/",
		},
		"leapfastq/internal/reference": {
			"leapfastq/internal/manifest", "leapfastq/internal/aggregate",
			"leapfastq/internal/writers", "leapfastq/internal/pipeline",
			"leapfastq/internal/config", "leapfastq/internal/cli", "leapfastq/internal/app",
			"leapfastq/cmd/",
		},
		"leapfastq/internal/manifest": {
			"leapfastq/internal/aggregate", "leapfastq/internal/writers",
			"leapfastq/internal/pipeline", "leapfastq/internal/config",
			"leapfastq/internal/cli", "leapfastq/internal/app", "leapfastq/cmd/",
		},
		"leapfastq/internal/aggregate": {
			"leapfastq/internal/writers", "leapfastq/internal/pipeline",
			"leapfastq/internal/config", "leapfastq/internal/cli", "leapfastq/internal/app",
			"leapfastq/pkg/api", "leapfastq/cmd/",
		},
		"leapfastq/internal/writers": {
			"leapfastq/internal/manifest", "leapfastq/internal/pipeline",
			"leapfastq/internal/config", "leapfastq/internal/cli", "leapfastq/internal/app",
			"leapfastq/cmd/",
		},
		"leapfastq/internal/pipeline": {
			"leapfastq/internal/cli", "leapfastq/internal/app", "leapfastq/cmd/",
		},
		"leapfastq/pkg/api": {
			"leapfastq/internal/",
		},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "leapfastq/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "leapfastq/") {
					continue
				}
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
