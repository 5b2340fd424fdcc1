package plist

import (
	"fmt"

	"github.com/beevik/etree"
)

const (
	xmlHeader  = `version="1.0" encoding="UTF-8"`
	xmlDoctype = `DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd"`
)

type xmlCodec struct {
	doc  *etree.Document
	dict *etree.Element
}

func newXMLCodec() *xmlCodec {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", xmlHeader)
	doc.CreateDirective(xmlDoctype)
	root := doc.CreateElement("plist")
	root.CreateAttr("version", "1.0")
	return &xmlCodec{doc: doc, dict: root.CreateElement("dict")}
}

func decodeXML(data []byte) (*xmlCodec, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}

	root := doc.Root()
	if root == nil || root.Tag != "plist" {
		return nil, fmt.Errorf("missing <plist> root element")
	}
	dict := root.SelectElement("dict")
	if dict == nil {
		return nil, fmt.Errorf("top-level value is not a <dict>")
	}
	return &xmlCodec{doc: doc, dict: dict}, nil
}

// array finds the <array> following the Exclusions <key>
func (c *xmlCodec) array() *etree.Element {
	children := c.dict.ChildElements()
	for i := 0; i+1 < len(children); i++ {
		if children[i].Tag == "key" && children[i].Text() == ExclusionsKey {
			if children[i+1].Tag == "array" {
				return children[i+1]
			}
			return nil
		}
	}
	return nil
}

func (c *xmlCodec) exclusions() []string {
	paths := []string{}
	arr := c.array()
	if arr == nil {
		return paths
	}
	for _, el := range arr.SelectElements("string") {
		paths = append(paths, el.Text())
	}
	return paths
}

func (c *xmlCodec) setExclusions(paths []string) {
	arr := c.array()
	if arr == nil {
		c.removeKey(ExclusionsKey)
		c.dict.CreateElement("key").SetText(ExclusionsKey)
		arr = c.dict.CreateElement("array")
	}

	for len(arr.Child) > 0 {
		arr.RemoveChildAt(len(arr.Child) - 1)
	}
	for _, p := range paths {
		arr.CreateElement("string").SetText(p)
	}
}

// removeKey drops a key and its value when the value is not an array
func (c *xmlCodec) removeKey(key string) {
	children := c.dict.ChildElements()
	for i := 0; i < len(children); i++ {
		if children[i].Tag == "key" && children[i].Text() == key {
			if i+1 < len(children) {
				c.dict.RemoveChild(children[i+1])
			}
			c.dict.RemoveChild(children[i])
			return
		}
	}
}

func (c *xmlCodec) encode() ([]byte, error) {
	c.doc.IndentTabs()
	return c.doc.WriteToBytes()
}
