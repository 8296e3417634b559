package inspect

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/cwmp-model/cwmp-go/pkg/model"
	"github.com/cwmp-model/cwmp-go/pkg/paramtree"
	"github.com/cwmp-model/cwmp-go/pkg/validate"
)

var (
	objectColor   = color.New(color.FgHiBlue, color.Bold)
	nameColor     = color.New(color.FgHiYellow)
	valueColor    = color.New(color.FgCyan)
	unsetColor    = color.New(color.FgHiBlack)
	metaColor     = color.New(color.FgHiBlack, color.Italic)
	addedColor    = color.New(color.FgHiGreen)
	removedColor  = color.New(color.FgHiRed)
	modifiedColor = color.New(color.FgHiYellow)
)

// Formatter formats trees and parameters for terminal output.
type Formatter struct {
	// ShowMetadata includes type, access, unit and constraint information.
	ShowMetadata bool

	// ShowUnset includes parameters without a value.
	ShowUnset bool

	// IndentWidth is the number of spaces per indent level.
	IndentWidth int

	// NoColor disables highlighting.
	NoColor bool
}

// NewFormatter creates a new Formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{
		ShowMetadata: true,
		IndentWidth:  2,
	}
}

// Indent returns the content with indentation.
func (f *Formatter) Indent(depth int, content string) string {
	width := f.IndentWidth
	if width == 0 {
		width = 2
	}
	return strings.Repeat(" ", depth*width) + content
}

func (f *Formatter) paint(c *color.Color, s string) string {
	if f.NoColor {
		return s
	}
	return c.Sprint(s)
}

// FormatValue formats a parameter value for display. Strings are quoted,
// unset values print as null and seconds get a duration suffix.
func (f *Formatter) FormatValue(p paramtree.Parameter) string {
	if !p.Set {
		return "null"
	}
	unit := ""
	if p.Meta != nil {
		unit = p.Meta.Units
	}

	switch v := p.Value.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case int32:
		return formatIntWithUnit(int64(v), unit)
	case int64:
		return formatIntWithUnit(v, unit)
	case uint32:
		return formatUintWithUnit(uint64(v), unit)
	case uint64:
		return formatUintWithUnit(v, unit)
	default:
		return p.Text()
	}
}

func formatIntWithUnit(v int64, unit string) string {
	if unit == "" {
		return fmt.Sprintf("%d", v)
	}
	base := fmt.Sprintf("%d %s", v, unit)
	if unit == "seconds" && v >= 60 {
		return fmt.Sprintf("%s (%s)", base, time.Duration(v)*time.Second)
	}
	return base
}

func formatUintWithUnit(v uint64, unit string) string {
	if unit == "seconds" && v <= 1<<40 {
		return formatIntWithUnit(int64(v), unit)
	}
	if unit == "" {
		return fmt.Sprintf("%d", v)
	}
	return fmt.Sprintf("%d %s", v, unit)
}

// FormatAccess formats an access level for display.
func FormatAccess(access model.Access) string {
	switch access {
	case model.AccessReadOnly:
		return "read-only"
	case model.AccessReadWrite:
		return "read-write"
	default:
		return fmt.Sprintf("access(%d)", access)
	}
}

// FormatMetadata returns the bracketed metadata of a parameter, e.g.
// "(string, read-write, maxLength=64)".
func FormatMetadata(m *model.ParameterMetadata) string {
	parts := []string{m.Type.String(), FormatAccess(m.Access)}
	if c := m.Constraints(); c != "" {
		parts = append(parts, c)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (f *Formatter) parameterLine(depth int, name string, p paramtree.Parameter) string {
	value := f.FormatValue(p)
	if p.Set {
		value = f.paint(valueColor, value)
	} else {
		value = f.paint(unsetColor, value)
	}
	line := f.Indent(depth, f.paint(nameColor, name)+": "+value)
	if f.ShowMetadata {
		line += " " + f.paint(metaColor, FormatMetadata(p.Meta))
	}
	return line
}

// FormatTree renders the tree as an indented outline. Absent singular
// objects and, unless ShowUnset is set, unset parameters are left out.
func (f *Formatter) FormatTree(t *paramtree.Tree) string {
	var sb strings.Builder
	_ = t.Walk(f.outline(&sb))
	return sb.String()
}

// FormatSubtree renders the subtree at path like FormatTree.
func (f *Formatter) FormatSubtree(t *paramtree.Tree, path string) (string, error) {
	var sb strings.Builder
	if err := t.WalkFrom(path, f.outline(&sb)); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (f *Formatter) outline(sb *strings.Builder) paramtree.WalkFunc {
	return func(e paramtree.Entry) error {
		switch e.Kind {
		case paramtree.EntryObject:
			if !e.Present {
				return paramtree.SkipObject
			}
			sb.WriteString(f.Indent(e.Depth, f.paint(objectColor, e.Path)))
		case paramtree.EntryCollection:
			if e.Instances == 0 && !f.ShowUnset {
				return paramtree.SkipObject
			}
			sb.WriteString(f.Indent(e.Depth, f.paint(objectColor, e.Path)))
			sb.WriteString(f.paint(metaColor, fmt.Sprintf(" [%d]", e.Instances)))
		case paramtree.EntryParameter:
			if !e.Param.Set && !f.ShowUnset {
				return nil
			}
			sb.WriteString(f.parameterLine(e.Depth, e.Param.Meta.Name, e.Param))
		}
		sb.WriteString("\n")
		return nil
	}
}

// FormatParameters formats parameters one per line with full paths.
func (f *Formatter) FormatParameters(params []paramtree.Parameter) string {
	if len(params) == 0 {
		return "  (no parameters)\n"
	}
	var sb strings.Builder
	for _, p := range params {
		sb.WriteString(f.parameterLine(0, p.Path, p))
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatNames formats a Names listing; writable parameters are marked "w".
func (f *Formatter) FormatNames(names []paramtree.Name) string {
	var sb strings.Builder
	for _, n := range names {
		mark := " "
		if n.Writable {
			mark = "w"
		}
		c := nameColor
		if strings.HasSuffix(n.Path, ".") {
			c = objectColor
		}
		sb.WriteString(mark + " " + f.paint(c, n.Path) + "\n")
	}
	return sb.String()
}

// FormatChanges formats a diff in unified style.
func (f *Formatter) FormatChanges(changes []paramtree.Change) string {
	if len(changes) == 0 {
		return "  (no changes)\n"
	}
	var sb strings.Builder
	for _, c := range changes {
		switch c.Kind {
		case paramtree.ChangeAdded:
			sb.WriteString(f.paint(addedColor, fmt.Sprintf("+ %s = %q", c.Path, c.New)))
		case paramtree.ChangeRemoved:
			sb.WriteString(f.paint(removedColor, fmt.Sprintf("- %s = %q", c.Path, c.Old)))
		case paramtree.ChangeModified:
			sb.WriteString(f.paint(modifiedColor, fmt.Sprintf("~ %s: %q -> %q", c.Path, c.Old, c.New)))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatViolations formats validation results.
func (f *Formatter) FormatViolations(vs validate.Violations) string {
	if len(vs) == 0 {
		return "  (no violations)\n"
	}
	var sb strings.Builder
	for _, v := range vs {
		sb.WriteString(fmt.Sprintf("%s: %s=%d, value %s\n",
			f.paint(removedColor, v.Path), v.Constraint, v.Limit, f.paint(valueColor, fmt.Sprintf("%q", v.Value))))
	}
	return sb.String()
}
