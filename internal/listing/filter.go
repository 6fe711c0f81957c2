// Package listing classifies marketplace items fetched from the eBay Finding API
// and builds item filter parameters for its search requests.
package listing

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dlclark/regexp2"

	"tariff_tracker/internal/config"
	"tariff_tracker/internal/entity"
)

const (
	ReasonMinusWords = "minusWords"
	ReasonKeywords   = "keywords"
	ReasonCondition  = "condition"
	ReasonCategory   = "category"
	ReasonAuction    = "auction"
)

// reasonMessages has no entry for auction, its code is used as the message.
var reasonMessages = map[string]string{
	ReasonMinusWords: "Title has minus word",
	ReasonKeywords:   "Title hasn't keywords",
	ReasonCondition:  "Title has mistake condition",
	ReasonCategory:   "Item has excluded categoryId",
}

const listingTypeAuction = "Auction"

var ErrInvalidMinusWords = errors.New("invalid minus words")

// Filter holds compiled rules. It has no mutable state and is safe for concurrent use.
type Filter struct {
	minusWords *regexp2.Regexp
	keywords   []string
	conditions []string
	categories map[string]struct{}
}

// NewFilter compiles the rules. Minus words are regex fragments joined with "|".
func NewFilter(rules config.ListingRules) (*Filter, error) {
	f := &Filter{
		keywords:   lowerAll(rules.Keywords),
		conditions: lowerAll(rules.Conditions),
	}
	if len(rules.MinusWords) > 0 {
		re, err := regexp2.Compile("("+strings.Join(rules.MinusWords, "|")+")", regexp2.IgnoreCase)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidMinusWords, err)
		}
		f.minusWords = re
	}
	if len(rules.Categories) > 0 {
		f.categories = make(map[string]struct{}, len(rules.Categories))
		for _, c := range rules.Categories {
			f.categories[c] = struct{}{}
		}
	}
	return f, nil
}

func (f *Filter) IsListingTypeAuction(item entity.ListingItem) bool {
	return item.ListingType() == listingTypeAuction
}

// TitleValidByMinusWords reports whether the title has none of the minus words.
func (f *Filter) TitleValidByMinusWords(title string) bool {
	if f.minusWords == nil {
		return true
	}
	matched, err := f.minusWords.MatchString(title)
	if err != nil {
		// match timeout, treat the title as suspicious
		return false
	}
	return !matched
}

// TitleValidByKeywords reports whether the title has at least one keyword.
func (f *Filter) TitleValidByKeywords(title string) bool {
	if len(f.keywords) == 0 {
		return true
	}
	lt := strings.ToLower(title)
	for _, k := range f.keywords {
		if strings.Contains(lt, k) {
			return true
		}
	}
	return false
}

// TitleValidByCondition reports whether the title mentions no bad condition.
func (f *Filter) TitleValidByCondition(title string) bool {
	lt := strings.ToLower(title)
	for _, c := range f.conditions {
		if strings.Contains(lt, c) {
			return false
		}
	}
	return true
}

func (f *Filter) CategoryValid(categoryID string) bool {
	if f.categories == nil {
		return true
	}
	_, ok := f.categories[categoryID]
	return ok
}

// Accumulator collects accepted items in input order and exclusions by item id.
type Accumulator struct {
	mu       sync.Mutex
	Accepted []entity.ListingItem
	Excluded map[string]*entity.ExclusionRecord
}

func NewAccumulator() *Accumulator {
	return &Accumulator{
		Accepted: []entity.ListingItem{},
		Excluded: map[string]*entity.ExclusionRecord{},
	}
}

// exclude records the reason for the item, merging with reasons recorded before.
func (a *Accumulator) exclude(item entity.ListingItem, reason string) {
	id := item.ID()
	rec, ok := a.Excluded[id]
	if !ok {
		rec = &entity.ExclusionRecord{ItemID: id, Reasons: map[string]string{}}
		a.Excluded[id] = rec
	}
	msg, ok := reasonMessages[reason]
	if !ok {
		msg = reason
	}
	rec.Reasons[reason] = msg
	rec.Item = item
}

func (a *Accumulator) isExcluded(item entity.ListingItem) bool {
	_, ok := a.Excluded[item.ID()]
	return ok
}

// AddItems checks every item against all rules, records each failed rule and
// appends items without exclusions to acc.Accepted. A nil acc starts a new one.
func (f *Filter) AddItems(acc *Accumulator, items []entity.ListingItem) *Accumulator {
	if acc == nil {
		acc = NewAccumulator()
	}
	acc.mu.Lock()
	defer acc.mu.Unlock()

	for _, item := range items {
		title := item.TitleText()
		if !f.TitleValidByMinusWords(title) {
			acc.exclude(item, ReasonMinusWords)
		}
		if !f.TitleValidByKeywords(title) {
			acc.exclude(item, ReasonKeywords)
		}
		if !f.TitleValidByCondition(title) {
			acc.exclude(item, ReasonCondition)
		}
		if !f.CategoryValid(item.CategoryID()) {
			acc.exclude(item, ReasonCategory)
		}
		if f.IsListingTypeAuction(item) {
			acc.exclude(item, ReasonAuction)
		}
		if !acc.isExcluded(item) {
			acc.Accepted = append(acc.Accepted, item)
		}
	}
	return acc
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
