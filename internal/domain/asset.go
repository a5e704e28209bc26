package domain

// AssetType identifies a kind of manually tracked holding. The value doubles as
// the product type key used in snapshots and save requests.
type AssetType string

const (
	AssetTypeAccount       AssetType = "ACCOUNT"
	AssetTypeCard          AssetType = "CARD"
	AssetTypeLoan          AssetType = "LOAN"
	AssetTypeFundPortfolio AssetType = "FUND_PORTFOLIO"
	AssetTypeFund          AssetType = "FUND"
	AssetTypeStock         AssetType = "STOCK_ETF"
	AssetTypeDeposit       AssetType = "DEPOSIT"
	AssetTypeFactoring     AssetType = "FACTORING"
	AssetTypeRealEstateCF  AssetType = "REAL_ESTATE_CF"
	AssetTypeCrypto        AssetType = "CRYPTO"
)

// AllAssetTypes lists every supported asset type in display order.
var AllAssetTypes = []AssetType{
	AssetTypeAccount,
	AssetTypeCard,
	AssetTypeLoan,
	AssetTypeFundPortfolio,
	AssetTypeFund,
	AssetTypeStock,
	AssetTypeDeposit,
	AssetTypeFactoring,
	AssetTypeRealEstateCF,
	AssetTypeCrypto,
}

// ParseAssetType returns the asset type matching s.
func ParseAssetType(s string) (AssetType, error) {
	for _, t := range AllAssetTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", ErrUnknownAssetType
}

// Source tells whether an entry is user-maintained or owned by an external
// provider. Only manual entries are ever staged as drafts.
type Source string

const (
	SourceManual Source = "MANUAL"
	SourceRemote Source = "REAL"
)

// IsManual reports whether entries with this source may be edited locally.
// An empty source is treated as manual: entries created in this session carry none.
func (s Source) IsManual() bool {
	return s == "" || s == SourceManual
}
