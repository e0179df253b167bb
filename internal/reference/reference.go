// internal/reference/reference.go
package reference

import (
	"errors"
	"fmt"
	"strings"
)

// BWA index suffixes written next to every reference FASTA, in output order.
var indexSuffixes = [...]string{".fai", ".amb", ".ann", ".bwt", ".pac", ".sa"}

// Genome names a reference FASTA below the reference root.
type Genome struct {
	Name  string `yaml:"Name" json:"Name"`
	Dir   string `yaml:"Dir" json:"Dir"`
	Fasta string `yaml:"Fasta" json:"Fasta"`
}

// Paths is a resolved genome: the FASTA and its index files.
type Paths struct {
	Name  string
	Fasta string
	Fai   string
	Amb   string
	Ann   string
	Bwt   string
	Pac   string
	Sa    string
}

// Defaults from the LEAP run: human primary, mouse and salmon supplementary.
var (
	Human  = Genome{Name: "human", Dir: "human", Fasta: "GRCh37-lite.fa"}
	Mouse  = Genome{Name: "mouse", Dir: "mouse", Fasta: "mm10_build38_mouse.fasta"}
	Salmon = Genome{Name: "salmon", Dir: "salmon", Fasta: "GCF_002021735.1_Okis_V1_genomic.fna"}
)

// DefaultSupplementary returns a fresh copy of the default supplementary set.
func DefaultSupplementary() []Genome { return []Genome{Mouse, Salmon} }

// Validate checks that g can be resolved.
func (g Genome) Validate() error {
	switch {
	case g.Name == "":
		return errors.New("genome name is empty")
	case g.Fasta == "":
		return fmt.Errorf("genome %q: fasta is empty", g.Name)
	}
	return nil
}

// Resolve joins root, dir and fasta with '/' and derives the index paths.
// Nothing is checked on disk.
func (g Genome) Resolve(root string) Paths {
	dir := g.Dir
	if dir == "" {
		dir = g.Name
	}
	fa := join(root, dir, g.Fasta)
	idx := make([]string, len(indexSuffixes))
	for i, s := range indexSuffixes {
		idx[i] = fa + s
	}
	return Paths{
		Name:  g.Name,
		Fasta: fa,
		Fai:   idx[0],
		Amb:   idx[1],
		Ann:   idx[2],
		Bwt:   idx[3],
		Pac:   idx[4],
		Sa:    idx[5],
	}
}

// join keeps URL-style roots ("https://...") intact, unlike path.Join.
func join(root, dir, file string) string {
	root = strings.TrimRight(root, "/")
	if root == "" {
		return dir + "/" + file
	}
	return root + "/" + dir + "/" + file
}
