package bloopreport

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/mikeschinkel/bloopcfg/bloopmodel"
)

// Summary is the one-line view of a project shown in reports.
type Summary struct {
	Name         string
	Platform     string
	MainClass    string
	Sources      int
	Dependencies []string
}

// Summaries holds one Summary per project, in document order.
type Summaries []Summary

func Summarize(f *bloopmodel.File) (ss Summaries) {
	ss = make(Summaries, 0, len(f.Projects))
	for _, p := range f.Projects {
		ss = append(ss, summarize(p))
	}
	return ss
}

func summarize(p bloopmodel.Project) (s Summary) {
	s = Summary{
		Name:         p.Name,
		Sources:      len(p.Sources) + len(p.SourcesGlobs),
		Dependencies: p.Dependencies,
	}
	if p.Platform == nil {
		goto end
	}
	s.Platform = p.Platform.Kind().Tag()
	if p.Platform.MainClass() != nil {
		s.MainClass = *p.Platform.MainClass()
	}
end:
	return s
}

// TableWriter returns a configured table.Writer for pretty printing projects
func (ss Summaries) TableWriter() (tw table.Writer) {
	tw = table.NewWriter()

	if len(ss) > 0 {
		tw.AppendHeader(table.Row{
			"PROJECT",
			"PLATFORM",
			"MAIN CLASS",
			"SOURCES",
			"DEPENDENCIES",
		})
		for _, s := range ss {
			tw.AppendRow(table.Row{
				s.Name,
				s.Platform,
				formatMainClass(s.MainClass),
				s.Sources,
				formatDependencies(s.Dependencies),
			})
		}
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignLeft},
	})
	tw.SetStyle(table.StyleLight)

	return tw
}

// CSV writes projects as CSV to the provided writer
func (ss Summaries) CSV(w io.Writer) (err error) {
	var csvWriter *csv.Writer

	csvWriter = csv.NewWriter(w)
	err = csvWriter.Write([]string{
		"project",
		"platform",
		"main_class",
		"sources",
		"dependencies",
	})
	if err != nil {
		goto end
	}
	for _, s := range ss {
		err = csvWriter.Write([]string{
			s.Name,
			s.Platform,
			s.MainClass,
			strconv.Itoa(s.Sources),
			strings.Join(s.Dependencies, " "),
		})
		if err != nil {
			goto end
		}
	}
	csvWriter.Flush()
	err = csvWriter.Error()
end:
	return err
}

// Render writes a table summarizing every project in f.
func Render(w io.Writer, f *bloopmodel.File) (err error) {
	tw := Summarize(f).TableWriter()
	_, err = io.WriteString(w, tw.Render()+"\n")
	return err
}

func formatMainClass(mainClass string) string {
	if mainClass == "" {
		return "-"
	}
	return mainClass
}

func formatDependencies(deps []string) string {
	if len(deps) == 0 {
		return "-"
	}
	return strings.Join(deps, ", ")
}
