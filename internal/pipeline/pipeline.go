// internal/pipeline/pipeline.go
package pipeline

import (
	"io"

	"go.uber.org/zap"

	"leapfastq/internal/aggregate"
	"leapfastq/internal/config"
	"leapfastq/internal/manifest"
	"leapfastq/internal/writers"
)

// Summary reports what a run produced.
type Summary struct {
	aggregate.Stats
	Lanes int
	Cells int
}

// Run reads the manifest named in s, groups its rows and writes both
// documents. stdout receives any document whose destination is "-".
func Run(s *config.Settings, stdout io.Writer, log *zap.Logger) (Summary, error) {
	var sum Summary

	log.Info("parsing manifest", zap.String("path", s.InputFilePath))
	rows, err := manifest.LoadCSV(s.InputFilePath)
	if err != nil {
		return sum, err
	}

	aggs, st, err := aggregate.Group(rows, aggregate.Options{
		StoragePrefix: s.DataStoragePrefix,
		Condition:     s.Condition,
		SampleType:    s.SampleType,
	}, log)
	sum.Stats = st
	if err != nil {
		return sum, err
	}
	sum.Lanes = len(aggs)
	sum.Cells = len(aggregate.ByCell(aggs))
	log.Info("grouped rows",
		zap.Int("rows", st.Rows),
		zap.Int("lanes", sum.Lanes),
		zap.Int("cells", sum.Cells),
		zap.Int("skipped", st.Skipped))

	log.Info("writing metadata", zap.String("dest", s.OutputMetadataYaml))
	if err := writers.WriteMetadata(s.OutputMetadataYaml, stdout, aggs); err != nil {
		return sum, err
	}

	log.Info("writing inputs", zap.String("dest", s.OutputInputsJson))
	err = writers.WriteInputs(s.OutputInputsJson, stdout, aggs, writers.Workflow{
		DockerImage:   s.DockerImage,
		MetadataYaml:  s.MetadataYamlPath,
		ReferenceRoot: s.ReferenceGenomes,
		Reference:     *s.Reference,
		Supplementary: s.SupplementaryReferences,
	})
	return sum, err
}
