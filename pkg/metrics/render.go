package metrics

import (
	"bytes"
	"io"
	"math"
	"strconv"
	"strings"
)

// ContentType is the MIME type of the rendered exposition.
const ContentType = "text/plain; version=0.0.4; charset=utf-8"

// Render walks the registry and writes every family and series in the
// Prometheus text exposition format. Rendering is read-only: it never
// mutates accumulated state, and it tolerates concurrent accumulator
// calls by reading a consistent snapshot per series (not across the
// whole registry). Dynamic families refresh their callback exactly once
// per render; a failing callback skips that family and the rest still
// renders.
func (r *Registry) Render(w io.Writer) error {
	for _, f := range r.Families() {
		if f.collect != nil {
			v, err := f.collect()
			if err != nil {
				continue
			}
			f.With().setDirect(v)
		}
		// Labeled families with no series yet still emit their header
		// lines, so every registered metric is visible from startup.
		if err := renderFamily(w, f.desc, f.Series()); err != nil {
			return err
		}
	}
	return nil
}

// RenderBytes renders the registry into a byte slice.
func (r *Registry) RenderBytes() []byte {
	var buf bytes.Buffer
	// Writes to a bytes.Buffer cannot fail.
	_ = r.Render(&buf)
	return buf.Bytes()
}

func renderFamily(w io.Writer, desc Desc, series []*Series) error {
	var b strings.Builder
	b.WriteString("# HELP ")
	b.WriteString(desc.Name)
	b.WriteByte(' ')
	b.WriteString(escapeHelp(desc.Help))
	b.WriteByte('\n')
	b.WriteString("# TYPE ")
	b.WriteString(desc.Name)
	b.WriteByte(' ')
	b.WriteString(desc.Type.String())
	b.WriteByte('\n')

	for _, s := range series {
		switch desc.Type {
		case HistogramType:
			renderHistogram(&b, desc, s)
		default:
			b.WriteString(desc.Name)
			writeLabels(&b, desc.LabelNames, s.labelValues, "", "")
			b.WriteByte(' ')
			b.WriteString(formatFloat(s.Value()))
			b.WriteByte('\n')
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func renderHistogram(b *strings.Builder, desc Desc, s *Series) {
	snap, err := s.Histogram()
	if err != nil {
		return
	}
	for i, bound := range snap.UpperBounds {
		b.WriteString(desc.Name)
		b.WriteString("_bucket")
		writeLabels(b, desc.LabelNames, s.labelValues, bucketLabel, formatFloat(bound))
		b.WriteByte(' ')
		b.WriteString(strconv.FormatUint(snap.Counts[i], 10))
		b.WriteByte('\n')
	}
	b.WriteString(desc.Name)
	b.WriteString("_bucket")
	writeLabels(b, desc.LabelNames, s.labelValues, bucketLabel, "+Inf")
	b.WriteByte(' ')
	b.WriteString(strconv.FormatUint(snap.Counts[len(snap.UpperBounds)], 10))
	b.WriteByte('\n')

	b.WriteString(desc.Name)
	b.WriteString("_sum")
	writeLabels(b, desc.LabelNames, s.labelValues, "", "")
	b.WriteByte(' ')
	b.WriteString(formatFloat(snap.Sum))
	b.WriteByte('\n')

	b.WriteString(desc.Name)
	b.WriteString("_count")
	writeLabels(b, desc.LabelNames, s.labelValues, "", "")
	b.WriteByte(' ')
	b.WriteString(strconv.FormatUint(snap.Count, 10))
	b.WriteByte('\n')
}

// writeLabels writes the {name="value",...} block, including the extra
// pair when extraName is non-empty. Families with zero label names and
// no extra pair emit nothing, so the metric name stands alone.
func writeLabels(b *strings.Builder, names, values []string, extraName, extraValue string) {
	if len(names) == 0 && extraName == "" {
		return
	}
	b.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(escapeLabelValue(values[i]))
		b.WriteByte('"')
	}
	if extraName != "" {
		if len(names) > 0 {
			b.WriteByte(',')
		}
		b.WriteString(extraName)
		b.WriteString(`="`)
		b.WriteString(escapeLabelValue(extraValue))
		b.WriteByte('"')
	}
	b.WriteByte('}')
}

func formatFloat(v float64) string {
	switch {
	case math.IsInf(v, +1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

var (
	helpEscaper       = strings.NewReplacer(`\`, `\\`, "\n", `\n`)
	labelValueEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)
)

func escapeHelp(s string) string       { return helpEscaper.Replace(s) }
func escapeLabelValue(s string) string { return labelValueEscaper.Replace(s) }
