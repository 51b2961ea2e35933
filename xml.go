package rulekit

import (
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
)

// Element and attribute names of the XML rule data payload.
const (
	xmlFieldList  = "fieldList"
	xmlFieldValue = "fieldValue"
	xmlClassName  = "className"
	xmlFieldName  = "fieldName"
	xmlFieldAlias = "fieldAlias"
	xmlRowID      = "rowID"
)

// ParseRuleData parses an XML rule data payload into a queryable
// document node.
func ParseRuleData(payload string) (*xmlquery.Node, error) {
	return xmlquery.Parse(strings.NewReader(payload))
}

// ResolveXMLField resolves the value of fieldName for className from an
// XML rule data document.
//
// The lookup prefers an alias match: a fieldList element whose
// fieldAlias equals fieldName wins over one whose fieldName attribute
// does, regardless of document order. The matched element's fieldValue
// child text is returned.
//
// The row defaults to 1 and is matched against the rowID attribute.
// There is no strict mode: no match, a nil document, a query failure,
// or a match without a fieldValue child all resolve to the default
// value, and nothing is published to a notifier.
func ResolveXMLField(doc *xmlquery.Node, className, fieldName string, opts ...ResolveOption) string {
	cfg := newResolveConfig(opts)
	row := 1
	if cfg.rowGiven {
		row = cfg.row
	}
	rowID := strconv.Itoa(row)

	if doc == nil {
		return cfg.def
	}
	nodes, err := xmlquery.QueryAll(doc, "//"+xmlFieldList)
	if err != nil {
		return cfg.def
	}

	// Alias pass first, then name pass.
	for _, attr := range []string{xmlFieldAlias, xmlFieldName} {
		for _, n := range nodes {
			if n.SelectAttr(xmlClassName) != className ||
				n.SelectAttr(xmlRowID) != rowID ||
				n.SelectAttr(attr) != fieldName {
				continue
			}
			v := n.SelectElement(xmlFieldValue)
			if v == nil {
				return cfg.def
			}
			return v.InnerText()
		}
	}
	return cfg.def
}

// ResolveXMLFieldString is ResolveXMLField over an unparsed payload. A
// payload that does not parse resolves to the default value.
func ResolveXMLFieldString(payload, className, fieldName string, opts ...ResolveOption) string {
	doc, err := ParseRuleData(payload)
	if err != nil {
		cfg := newResolveConfig(opts)
		return cfg.def
	}
	return ResolveXMLField(doc, className, fieldName, opts...)
}
