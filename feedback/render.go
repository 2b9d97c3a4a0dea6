package feedback

import (
	"bytes"
	"fmt"

	"prover/catalog"
	"prover/colors"
	"prover/formula"
)

type Render struct {
	buf bytes.Buffer
}

func NewRender() *Render {
	return &Render{}
}

func (render *Render) WriteString(s string) {
	fmt.Fprintf(&render.buf, "%s", s)
}

func (render *Render) WriteBreak() {
	fmt.Fprintf(&render.buf, "\n\n")
}

func (render *Render) WriteNumber(n int, singular string, plural string) {
	if n == 1 {
		fmt.Fprintf(&render.buf, "%d %s", n, singular)
	} else {
		fmt.Fprintf(&render.buf, "%d %s", n, plural)
	}
}

func (render *Render) WriteCode(code string) {
	fmt.Fprintf(&render.buf, "%s", colors.Code(code))
}

func (render *Render) WriteEntry(entry catalog.Entry) {
	render.WriteCode(entry.Name)
}

func (render *Render) WriteFormula(f formula.Formula) {
	render.WriteCode(formula.Display(f))
}

func (render *Render) Finish() string {
	return render.buf.String()
}
