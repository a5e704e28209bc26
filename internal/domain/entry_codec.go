package domain

import (
	"encoding/json"
	"fmt"
)

// DecodeEntry decodes a JSON entry of product type t into its typed struct.
func DecodeEntry(t AssetType, raw []byte) (Entry, error) {
	var (
		entry Entry
		err   error
	)
	switch t {
	case AssetTypeAccount:
		entry, err = decodeAs[AccountEntry](raw)
	case AssetTypeCard:
		entry, err = decodeAs[CardEntry](raw)
	case AssetTypeLoan:
		entry, err = decodeAs[LoanEntry](raw)
	case AssetTypeFundPortfolio:
		entry, err = decodeAs[FundPortfolioEntry](raw)
	case AssetTypeFund:
		entry, err = decodeAs[FundEntry](raw)
	case AssetTypeStock:
		entry, err = decodeAs[StockEntry](raw)
	case AssetTypeDeposit:
		entry, err = decodeAs[DepositEntry](raw)
	case AssetTypeFactoring:
		entry, err = decodeAs[FactoringEntry](raw)
	case AssetTypeRealEstateCF:
		entry, err = decodeAs[RealEstateCFEntry](raw)
	case AssetTypeCrypto:
		entry, err = decodeAs[CryptoEntry](raw)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAssetType, t)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s entry: %w", t, err)
	}
	return entry, nil
}

func decodeAs[T Entry](raw []byte) (Entry, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}
