// Package rbxlx reads and writes the Roblox XML document format as IR
// trees. The schema is treated as fixed: items carry a class
// attribute and a Properties element of typed leaves keyed by a name
// attribute; property type tags map onto ir kinds and unknown tags
// degrade to unsupported values instead of failing the document.
package rbxlx

import (
	"encoding/xml"
	"errors"
)

var ErrStructure = errors.New("structural read error")

const (
	// document envelope, as written by the editor
	docVersion   = "4"
	docXMime     = "http://www.w3.org/2005/05/xmlmime"
	docXSI       = "http://www.w3.org/2001/XMLSchema-instance"
	docSchemaLoc = "http://www.roblox.com/roblox.xsd"
)

type xmlElem struct {
	XMLName  xml.Name
	NameAttr string    `xml:"name,attr,omitempty"`
	Text     string    `xml:",chardata"`
	Kids     []xmlElem `xml:",any"`
}

type xmlProps struct {
	Elems []xmlElem `xml:",any"`
}

type xmlItem struct {
	XMLName  xml.Name `xml:"Item"`
	Class    string   `xml:"class,attr"`
	Referent string   `xml:"referent,attr,omitempty"`
	Props    xmlProps `xml:"Properties"`
	Items    []xmlItem `xml:"Item"`
}

type xmlDoc struct {
	XMLName xml.Name  `xml:"roblox"`
	Items   []xmlItem `xml:"Item"`
}
