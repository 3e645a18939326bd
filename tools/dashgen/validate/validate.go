// Package validate checks generated dashboards and rules: every PromQL
// expression must parse and reference only known metrics.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/storefront-catalog/tools/dashgen/rules"
)

// Histogram series suffixes that resolve to their base metric.
var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Result collects validation findings. Errors fail generation; warnings
// are informational.
type Result struct {
	Errors   []error
	Warnings []string
}

// Ok reports whether validation found no errors.
func (r *Result) Ok() bool {
	return len(r.Errors) == 0
}

// Expr parses expr and returns the metric names it selects that are not
// in known.
func Expr(expr string, known map[string]bool) ([]string, error) {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		return nil, err
	}

	var unknown []string
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !isKnown(vs.Name, known) {
			unknown = append(unknown, vs.Name)
		}
		return nil
	})
	return unknown, nil
}

func isKnown(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range histogramSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}

func (r *Result) check(where, expr string, known map[string]bool) {
	unknown, err := Expr(expr, known)
	if err != nil {
		r.Errors = append(r.Errors, fmt.Errorf("%s: parsing %q: %w", where, expr, err))
		return
	}
	for _, name := range unknown {
		r.Errors = append(r.Errors, fmt.Errorf("%s: unknown metric %q", where, name))
	}
}

// dashboardModel is the part of the Grafana JSON model validation reads.
type dashboardModel struct {
	Panels []panelModel `json:"panels"`
}

type panelModel struct {
	Title   string        `json:"title"`
	Type    string        `json:"type"`
	Panels  []panelModel  `json:"panels"`
	Targets []targetModel `json:"targets"`
}

type targetModel struct {
	Expr string `json:"expr"`
}

// Dashboard validates every panel query of a built dashboard. dash is
// anything that encodes to the Grafana dashboard JSON model.
func Dashboard(dash any, known map[string]bool) Result {
	var res Result

	data, err := json.Marshal(dash)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Errorf("encoding dashboard: %w", err))
		return res
	}

	var model dashboardModel
	if err := json.Unmarshal(data, &model); err != nil {
		res.Errors = append(res.Errors, fmt.Errorf("decoding dashboard: %w", err))
		return res
	}

	for _, p := range model.Panels {
		res.panel(p, known)
		for _, inner := range p.Panels {
			res.panel(inner, known)
		}
	}
	return res
}

func (r *Result) panel(p panelModel, known map[string]bool) {
	if p.Type == "row" {
		return
	}
	if len(p.Targets) == 0 {
		r.Warnings = append(r.Warnings, fmt.Sprintf("panel %q has no queries", p.Title))
		return
	}
	for _, t := range p.Targets {
		r.check("panel "+p.Title, t.Expr, known)
	}
}

// Rules validates every expression in a PrometheusRule. Recording rules
// must record a known name.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result
	for _, g := range cr.Spec.Groups {
		for _, rule := range g.Rules {
			where := g.Name + "/" + rule.Name()
			if rule.Record != "" && !known[rule.Record] {
				res.Errors = append(res.Errors, fmt.Errorf("%s: unknown recording rule name", where))
			}
			res.check(where, rule.Expr, known)
		}
	}
	return res
}
