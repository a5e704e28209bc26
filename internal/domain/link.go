package domain

// LinkField reads and clears one reference field on entries of a single asset type.
type LinkField struct {
	Name string
	// Get returns the referenced id, or "" when the entry is not linked.
	Get func(Entry) string
	// Clear returns a copy of the entry with the link nulled.
	Clear func(Entry) Entry
}

// CardRelatedAccount is CardEntry.RelatedAccount.
var CardRelatedAccount = LinkField{
	Name: "related_account",
	Get: func(e Entry) string {
		c, ok := e.(CardEntry)
		if !ok || c.RelatedAccount == nil {
			return ""
		}
		return *c.RelatedAccount
	},
	Clear: func(e Entry) Entry {
		c, ok := e.(CardEntry)
		if !ok {
			return e
		}
		c.RelatedAccount = nil
		return c
	},
}

// PortfolioAccount is FundPortfolioEntry.AccountID.
var PortfolioAccount = LinkField{
	Name: "account_id",
	Get: func(e Entry) string {
		p, ok := e.(FundPortfolioEntry)
		if !ok || p.AccountID == nil {
			return ""
		}
		return *p.AccountID
	},
	Clear: func(e Entry) Entry {
		p, ok := e.(FundPortfolioEntry)
		if !ok {
			return e
		}
		p.AccountID = nil
		return p
	},
}

// FundPortfolio is FundEntry.Portfolio.ID.
var FundPortfolio = LinkField{
	Name: "portfolio.id",
	Get: func(e Entry) string {
		f, ok := e.(FundEntry)
		if !ok || f.Portfolio == nil {
			return ""
		}
		return f.Portfolio.ID
	},
	Clear: func(e Entry) Entry {
		f, ok := e.(FundEntry)
		if !ok {
			return e
		}
		f.Portfolio = nil
		return f
	},
}
