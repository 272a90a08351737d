package swift

import (
	"fmt"
	"strings"
)

// RenderOptions controls text serialization of a File.
type RenderOptions struct {
	// AccessLevel is the keyword applied to every generated declaration.
	AccessLevel string
	// IndentWidth is the number of spaces per nesting level.
	IndentWidth int
	// AvailabilityOSVersions is the platform list rendered in @available
	// annotations on gated declarations. An empty list disables gating.
	AvailabilityOSVersions []OSVersion
}

// Render serializes the file deterministically: header, imports (deduplicated
// by module, first occurrence wins), then code blocks in append order.
// Rendering the same file twice yields byte-identical text.
func Render(f *File, opts RenderOptions) (string, error) {
	if opts.IndentWidth <= 0 {
		return "", fmt.Errorf("swift: indent width must be positive, got %d", opts.IndentWidth)
	}
	r := &renderer{opts: opts}
	if err := r.file(f); err != nil {
		return "", err
	}
	return r.buf.String(), nil
}

// renderer holds single-use serialization state; a fresh instance is
// allocated per Render call.
type renderer struct {
	opts RenderOptions
	buf  strings.Builder
}

func (r *renderer) file(f *File) error {
	if f.Header != "" {
		r.buf.WriteString(strings.TrimRight(f.Header, "\n"))
		r.buf.WriteString("\n\n")
	}
	if n := r.imports(f.Imports); n > 0 {
		r.buf.WriteString("\n")
	}
	first := true
	for _, block := range f.Blocks {
		if len(block.Decls) == 0 && block.Comment == "" {
			continue
		}
		if !first {
			r.buf.WriteString("\n")
		}
		first = false
		if block.Comment != "" {
			r.line(0, "// "+block.Comment)
		}
		for i, d := range block.Decls {
			if i > 0 || block.Comment != "" {
				r.buf.WriteString("\n")
			}
			if err := r.decl(d, 0); err != nil {
				return err
			}
		}
	}
	return nil
}

// imports writes the deduplicated import section and reports how many
// imports were rendered.
func (r *renderer) imports(imports []Import) int {
	seen := make(map[string]bool, len(imports))
	n := 0
	for _, imp := range imports {
		if seen[imp.Module] {
			continue
		}
		seen[imp.Module] = true
		r.importDecl(imp)
		n++
	}
	return n
}

func (r *renderer) importDecl(imp Import) {
	var attrs strings.Builder
	if imp.SPI != "" {
		fmt.Fprintf(&attrs, "@_spi(%s) ", imp.SPI)
	}
	stmt := "import "
	if imp.Item != nil {
		stmt += string(imp.Item.Kind) + " " + imp.Module + "." + imp.Item.Name
	} else {
		stmt += imp.Module
	}
	switch imp.Preconcurrency {
	case PreconcurrencyRequired:
		r.line(0, attrs.String()+"@preconcurrency "+stmt)
	case PreconcurrencyRequiredOnPlatforms:
		conds := make([]string, len(imp.Platforms))
		for i, p := range imp.Platforms {
			conds[i] = "os(" + p + ")"
		}
		r.line(0, "#if "+strings.Join(conds, " || "))
		r.line(0, attrs.String()+"@preconcurrency "+stmt)
		r.line(0, "#else")
		r.line(0, attrs.String()+stmt)
		r.line(0, "#endif")
	default:
		r.line(0, attrs.String()+stmt)
	}
}

func (r *renderer) decl(d Decl, depth int) error {
	switch d := d.(type) {
	case Namespace:
		r.doc(d.Doc, depth)
		r.availability(d.Available, depth)
		return r.block(depth, r.access()+"enum "+d.Name, func() error {
			return r.decls(d.Decls, depth+1)
		}, len(d.Decls) == 0)
	case Protocol:
		r.doc(d.Doc, depth)
		r.availability(d.Available, depth)
		head := r.access() + "protocol " + d.Name
		if len(d.Refines) > 0 {
			head += ": " + strings.Join(d.Refines, ", ")
		}
		return r.block(depth, head, func() error {
			for i, sig := range d.Funcs {
				if i > 0 {
					r.buf.WriteString("\n")
				}
				r.doc(sig.Doc, depth+1)
				r.signature(sig, depth+1, "", nil, false)
			}
			return nil
		}, len(d.Funcs) == 0)
	case TypeAlias:
		r.doc(d.Doc, depth)
		r.availability(d.Available, depth)
		r.line(depth, r.access()+"typealias "+d.Name+" = "+d.Target)
	case Extension:
		r.doc(d.Doc, depth)
		r.availability(d.Available, depth)
		return r.block(depth, "extension "+d.Target, func() error {
			for i := range d.Funcs {
				if i > 0 {
					r.buf.WriteString("\n")
				}
				if err := r.function(d.Funcs[i], depth+1); err != nil {
					return err
				}
			}
			return nil
		}, len(d.Funcs) == 0)
	case Constant:
		r.constant(d, depth)
	case Struct:
		r.doc(d.Doc, depth)
		r.availability(d.Available, depth)
		head := r.access() + "struct " + d.Name
		if len(d.Conforms) > 0 {
			head += ": " + strings.Join(d.Conforms, ", ")
		}
		return r.block(depth, head, func() error {
			return r.decls(d.Decls, depth+1)
		}, len(d.Decls) == 0)
	case Property:
		r.doc(d.Doc, depth)
		access := r.access()
		if d.Private {
			access = "private "
		}
		r.line(depth, access+"let "+d.Name+": "+d.Type)
	case Function:
		return r.function(d, depth)
	default:
		return fmt.Errorf("swift: unknown declaration type %T", d)
	}
	return nil
}

func (r *renderer) decls(ds []Decl, depth int) error {
	for i, d := range ds {
		if i > 0 {
			r.buf.WriteString("\n")
		}
		if err := r.decl(d, depth); err != nil {
			return err
		}
	}
	return nil
}

func (r *renderer) function(fn Function, depth int) error {
	r.doc(fn.Signature.Doc, depth)
	r.signature(fn.Signature, depth, r.access(), fn.Body, true)
	return nil
}

// signature writes a function header. Protocol requirements (concrete
// false) are bare headers; concrete functions carry a brace-enclosed body,
// collapsed to {} when empty. Headers with more than two parameters are
// split across lines.
func (r *renderer) signature(sig FuncSignature, depth int, access string, body []Line, concrete bool) {
	head := access
	if sig.Initializer {
		head += "init"
	} else {
		head += "func " + sig.Name
		if len(sig.GenericParams) > 0 {
			head += "<" + strings.Join(sig.GenericParams, ", ") + ">"
		}
	}
	suffix := ""
	if sig.Async {
		suffix += " async"
	}
	if sig.Throws {
		suffix += " throws"
	}
	if sig.Result != "" {
		suffix += " -> " + sig.Result
	}
	if sig.Where != "" {
		suffix += " where " + sig.Where
	}

	params := make([]string, len(sig.Params))
	for i, p := range sig.Params {
		params[i] = r.param(p)
	}
	var tail string
	switch {
	case !concrete:
		tail = ""
	case len(body) == 0:
		tail = " {}"
	default:
		tail = " {"
	}
	if len(params) <= 2 {
		r.line(depth, head+"("+strings.Join(params, ", ")+")"+suffix+tail)
	} else {
		r.line(depth, head+"(")
		for i, p := range params {
			if i < len(params)-1 {
				p += ","
			}
			r.line(depth+1, p)
		}
		r.line(depth, ")"+suffix+tail)
	}
	if !concrete || len(body) == 0 {
		return
	}
	for _, ln := range body {
		r.line(depth+1+ln.Depth, ln.Text)
	}
	r.line(depth, "}")
}

func (r *renderer) param(p Param) string {
	s := p.Name
	if p.Label != "" && p.Label != p.Name {
		s = p.Label + " " + p.Name
	}
	s += ": " + p.Type
	if p.Default != "" {
		s += " = " + p.Default
	}
	return s
}

func (r *renderer) constant(c Constant, depth int) {
	r.doc(c.Doc, depth)
	head := r.access()
	if c.Static {
		head += "static "
	}
	head += "let " + c.Name
	if c.Type != "" {
		head += ": " + c.Type
	}
	switch {
	case c.Elements == nil:
		r.line(depth, head+" = "+c.Value)
	case len(c.Elements) == 0:
		r.line(depth, head+" = []")
	default:
		r.line(depth, head+" = [")
		for i, e := range c.Elements {
			if i < len(c.Elements)-1 {
				e += ","
			}
			r.line(depth+1, e)
		}
		r.line(depth, "]")
	}
}

// block writes "head {", the body one level deeper, and the closing brace.
// Empty bodies collapse to "head {}".
func (r *renderer) block(depth int, head string, body func() error, empty bool) error {
	if empty {
		r.line(depth, head+" {}")
		return nil
	}
	r.line(depth, head+" {")
	if err := body(); err != nil {
		return err
	}
	r.line(depth, "}")
	return nil
}

func (r *renderer) doc(doc string, depth int) {
	if doc == "" {
		return
	}
	for _, ln := range strings.Split(strings.TrimRight(doc, "\n"), "\n") {
		if ln == "" {
			r.line(depth, "///")
		} else {
			r.line(depth, "/// "+ln)
		}
	}
}

func (r *renderer) availability(gated bool, depth int) {
	if !gated || len(r.opts.AvailabilityOSVersions) == 0 {
		return
	}
	parts := make([]string, len(r.opts.AvailabilityOSVersions))
	for i, v := range r.opts.AvailabilityOSVersions {
		parts[i] = v.OS + " " + v.Version
	}
	r.line(depth, "@available("+strings.Join(parts, ", ")+", *)")
}

func (r *renderer) access() string {
	if r.opts.AccessLevel == "" {
		return ""
	}
	return r.opts.AccessLevel + " "
}

func (r *renderer) line(depth int, text string) {
	r.buf.WriteString(strings.Repeat(" ", depth*r.opts.IndentWidth))
	r.buf.WriteString(text)
	r.buf.WriteString("\n")
}
