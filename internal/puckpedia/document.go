package puckpedia

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Document is the query surface the extractor works against. It isolates the
// site's concrete markup behind ordered block handles, so the extraction
// logic can be exercised on synthetic fixtures.
type Document interface {
	TradeBlocks() []TradeBlock
}

// TradeBlock is the portion of a listing page describing one trade event.
type TradeBlock interface {
	DateText() string
	SummaryText() string
	DetailHref() string
	PlayerBlocks() []PlayerBlock
}

// PlayerBlock is one player (or pick/retention) card inside a trade block.
type PlayerBlock interface {
	NameText() string
	AgeText() string
	PositionText() string
	CapHitText() string
	// Text returns the card's full text, for pattern scans like "Yr a/b".
	Text() string
	IsDraftPick() bool
	IsRetainedSalary() bool
	HasCurrentContract() bool
}

// NewDocument parses listing-page HTML into a Document backed by goquery.
func NewDocument(r io.Reader) (Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return &htmlDocument{doc: doc}, nil
}

type htmlDocument struct {
	doc *goquery.Document
}

func (d *htmlDocument) TradeBlocks() []TradeBlock {
	var blocks []TradeBlock
	d.doc.Find("div.border.rounded-lg.mb-8.border-pp-border").Each(func(i int, s *goquery.Selection) {
		// The date lives in a separate header div immediately before the
		// trade container.
		header := s.PrevFiltered("div.tracking-widest")
		blocks = append(blocks, &htmlTradeBlock{content: s, header: header})
	})
	return blocks
}

type htmlTradeBlock struct {
	content *goquery.Selection
	header  *goquery.Selection
}

func (b *htmlTradeBlock) DateText() string {
	if b.header == nil || b.header.Length() == 0 {
		return ""
	}
	return b.header.Find("div.pl-2.text-pp-copy_dk").First().Text()
}

func (b *htmlTradeBlock) summaryLink() *goquery.Selection {
	return b.content.Find("div.pp_content a").First()
}

func (b *htmlTradeBlock) SummaryText() string {
	return strings.TrimSpace(b.summaryLink().Text())
}

func (b *htmlTradeBlock) DetailHref() string {
	href, _ := b.summaryLink().Attr("href")
	return href
}

func (b *htmlTradeBlock) PlayerBlocks() []PlayerBlock {
	var blocks []PlayerBlock
	b.content.Find("div.flex.items-start.mb-1.border.rounded-lg").Each(func(i int, s *goquery.Selection) {
		blocks = append(blocks, &htmlPlayerBlock{sel: s})
	})
	return blocks
}

type htmlPlayerBlock struct {
	sel *goquery.Selection
}

func (b *htmlPlayerBlock) NameText() string {
	return strings.TrimSpace(b.sel.Find("a.pp_link").First().Text())
}

// labeledSpan finds a span whose entire text is the given label and returns
// the text of its next sibling span, matching the site's label/value pairs.
func (b *htmlPlayerBlock) labeledSpan(label string) string {
	var value string
	b.sel.Find("span").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if strings.EqualFold(strings.TrimSpace(s.Text()), label) {
			value = strings.TrimSpace(s.Next().Text())
			return false
		}
		return true
	})
	return value
}

func (b *htmlPlayerBlock) AgeText() string {
	return b.labeledSpan("age")
}

func (b *htmlPlayerBlock) PositionText() string {
	return b.labeledSpan("pos")
}

func (b *htmlPlayerBlock) CapHitText() string {
	var value string
	b.sel.Find("div").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if strings.EqualFold(strings.TrimSpace(s.Text()), "Cap Hit") {
			value = strings.TrimSpace(s.Next().Text())
			return false
		}
		return true
	})
	return value
}

func (b *htmlPlayerBlock) Text() string {
	return b.sel.Text()
}

func (b *htmlPlayerBlock) containsFold(needle string) bool {
	return strings.Contains(strings.ToLower(b.sel.Text()), strings.ToLower(needle))
}

func (b *htmlPlayerBlock) IsDraftPick() bool {
	return b.containsFold("Draft Pick")
}

func (b *htmlPlayerBlock) IsRetainedSalary() bool {
	return b.containsFold("Salary Retained")
}

func (b *htmlPlayerBlock) HasCurrentContract() bool {
	return !b.containsFold("No Current Contract")
}
