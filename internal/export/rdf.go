// Package export serializes knowledge-base triples as RDF.
package export

import (
	"bufio"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"sort"

	"thorkg/internal/kb"
)

type Format string

const (
	FormatNTriples Format = "ntriples"
	FormatTurtle   Format = "turtle"
)

const (
	DefaultNamespace = "https://thorkg.dev/kb/"

	entityPrefix   = "ent"
	relationPrefix = "rel"
)

type FormatInfo struct {
	Name      Format
	MIMEType  string
	Extension string
}

var FormatRegistry = map[Format]FormatInfo{
	FormatNTriples: {Name: FormatNTriples, MIMEType: "application/n-triples", Extension: ".nt"},
	FormatTurtle:   {Name: FormatTurtle, MIMEType: "text/turtle", Extension: ".ttl"},
}

func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}

// localNamePattern is the subset of Turtle local names written without escaping.
var localNamePattern = regexp.MustCompile(`^[A-Za-z0-9_]([A-Za-z0-9_.-]*[A-Za-z0-9_-])?$`)

type Exporter struct {
	namespace string
}

func NewExporter(namespace string) *Exporter {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &Exporter{namespace: namespace}
}

func (e *Exporter) EntityIRI(name string) string {
	return e.namespace + "entity/" + url.PathEscape(name)
}

func (e *Exporter) RelationIRI(name string) string {
	return e.namespace + "relation/" + url.PathEscape(name)
}

// Export writes triples sorted by subject, relation and object so repeated
// exports of the same data are byte-identical.
func (e *Exporter) Export(w io.Writer, format Format, triples []kb.Triple) error {
	sorted := sortTriples(triples)
	bw := bufio.NewWriter(w)
	switch format {
	case FormatNTriples:
		e.writeNTriples(bw, sorted)
	case FormatTurtle:
		e.writeTurtle(bw, sorted)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	return bw.Flush()
}

func (e *Exporter) writeNTriples(w *bufio.Writer, triples []kb.Triple) {
	for _, t := range triples {
		fmt.Fprintf(w, "<%s> <%s> <%s> .\n", e.EntityIRI(t.Subject), e.RelationIRI(t.Relation), e.EntityIRI(t.Object))
	}
}

func (e *Exporter) writeTurtle(w *bufio.Writer, triples []kb.Triple) {
	fmt.Fprintf(w, "@prefix %s: <%sentity/> .\n", entityPrefix, e.namespace)
	fmt.Fprintf(w, "@prefix %s: <%srelation/> .\n\n", relationPrefix, e.namespace)

	for i := 0; i < len(triples); {
		subject := triples[i].Subject
		fmt.Fprintf(w, "%s\n", e.turtleTerm(entityPrefix, subject, e.EntityIRI))
		j := i
		for ; j < len(triples) && triples[j].Subject == subject; j++ {
			sep := " ;"
			if j+1 == len(triples) || triples[j+1].Subject != subject {
				sep = " ."
			}
			fmt.Fprintf(w, "    %s %s%s\n",
				e.turtleTerm(relationPrefix, triples[j].Relation, e.RelationIRI),
				e.turtleTerm(entityPrefix, triples[j].Object, e.EntityIRI),
				sep,
			)
		}
		w.WriteString("\n")
		i = j
	}
}

func (e *Exporter) turtleTerm(prefix, name string, iri func(string) string) string {
	if localNamePattern.MatchString(name) {
		return prefix + ":" + name
	}
	return "<" + iri(name) + ">"
}

func sortTriples(triples []kb.Triple) []kb.Triple {
	out := kb.Unique(triples)
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Subject != b.Subject {
			return a.Subject < b.Subject
		}
		if a.Relation != b.Relation {
			return a.Relation < b.Relation
		}
		return a.Object < b.Object
	})
	return out
}
