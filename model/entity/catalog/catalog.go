package catalog

import "encoding/xml"

// Record is a marketplace listing decoded from the bundled product document.
type Record struct {
	XMLName            xml.Name           `xml:"product" json:"-"`
	SKU                string             `xml:"sku" json:"sku"`
	ProductInformation ProductInformation `xml:"productInformation" json:"productInformation"`
}

type ProductInformation struct {
	Title                string               `xml:"title" json:"title"`
	ProductID            string               `xml:"productId" json:"productId"`
	Attributes           []Attribute          `xml:"attributes>attribute" json:"attributes"`
	ConditionInformation ConditionInformation `xml:"conditionInformation" json:"conditionInformation"`
}

// Attribute is a name/value pair; slice order follows the document.
type Attribute struct {
	Name  string `xml:"name,attr" json:"name"`
	Value string `xml:",chardata" json:"value"`
}

type ConditionInformation struct {
	Condition  string `xml:"condition" json:"condition"`
	PictureURL string `xml:"pictureUrl" json:"pictureUrl"`
}
