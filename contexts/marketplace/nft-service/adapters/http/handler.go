package httpadapter

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"mintbay/contexts/marketplace/nft-service/application/commands"
	"mintbay/contexts/marketplace/nft-service/application/queries"
	"mintbay/contexts/marketplace/nft-service/domain/entities"
	domainerrors "mintbay/contexts/marketplace/nft-service/domain/errors"
	httptransport "mintbay/contexts/marketplace/nft-service/transport/http"
)

type Handler struct {
	Mint        commands.MintUseCase
	ListForSale commands.ListForSaleUseCase
	Purchase    commands.PurchaseUseCase
	GetRecord   queries.GetRecordUseCase
	ListOwned   queries.ListOwnedUseCase
	ListListed  queries.ListListedUseCase
	Logger      *slog.Logger
}

// MintHandler applies the caller-side conventions the store deliberately
// does not enforce: title, description and price must be present and the
// price must parse as a positive number.
func (h Handler) MintHandler(
	ctx context.Context,
	idempotencyKey string,
	actor string,
	req httptransport.MintRequest,
) (httptransport.NFTResponse, error) {
	if strings.TrimSpace(req.Title) == "" ||
		strings.TrimSpace(req.Description) == "" ||
		!isPositivePrice(req.Price) {
		return httptransport.NFTResponse{}, domainerrors.ErrInvalidRequest
	}
	result, err := h.Mint.Execute(ctx, commands.MintCommand{
		Owner:          actor,
		Title:          strings.TrimSpace(req.Title),
		Description:    strings.TrimSpace(req.Description),
		PriceAmount:    strings.TrimSpace(req.Price),
		ImageURL:       strings.TrimSpace(req.ImageURL),
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		return httptransport.NFTResponse{}, err
	}
	return toNFTResponse(result.Record), nil
}

func (h Handler) ListForSaleHandler(
	ctx context.Context,
	idempotencyKey string,
	actor string,
	tokenID string,
	req httptransport.ListForSaleRequest,
) (httptransport.NFTResponse, error) {
	if !isPositivePrice(req.Price) {
		return httptransport.NFTResponse{}, domainerrors.ErrInvalidRequest
	}
	result, err := h.ListForSale.Execute(ctx, commands.ListForSaleCommand{
		Owner:          actor,
		TokenID:        strings.TrimSpace(tokenID),
		PriceAmount:    strings.TrimSpace(req.Price),
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		return httptransport.NFTResponse{}, err
	}
	return toNFTResponse(result.Record), nil
}

func (h Handler) PurchaseHandler(
	ctx context.Context,
	idempotencyKey string,
	actor string,
	tokenID string,
	req httptransport.PurchaseRequest,
) (httptransport.PurchaseResponse, error) {
	result, err := h.Purchase.Execute(ctx, commands.PurchaseCommand{
		Buyer:          actor,
		TokenID:        strings.TrimSpace(tokenID),
		ExpectedPrice:  strings.TrimSpace(req.ExpectedPrice),
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		return httptransport.PurchaseResponse{}, err
	}
	resp := httptransport.PurchaseResponse{Status: "success"}
	resp.Data.Receipt = result.Receipt
	resp.Data.TokenID = result.Record.TokenID
	resp.Data.Owner = result.Record.Creator
	return resp, nil
}

func (h Handler) GetRecordHandler(ctx context.Context, tokenID string) (httptransport.NFTResponse, bool) {
	record, found := h.GetRecord.Execute(ctx, tokenID)
	if !found {
		return httptransport.NFTResponse{}, false
	}
	return toNFTResponse(record), true
}

func (h Handler) ListOwnedHandler(ctx context.Context, identity string) httptransport.NFTListResponse {
	return toNFTListResponse(h.ListOwned.Execute(ctx, identity))
}

func (h Handler) ListListedHandler(ctx context.Context) httptransport.NFTListResponse {
	return toNFTListResponse(h.ListListed.Execute(ctx))
}

func isPositivePrice(raw string) bool {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	return err == nil && value > 0
}

func toNFTResponse(record entities.Record) httptransport.NFTResponse {
	return httptransport.NFTResponse{Status: "success", Data: toNFTData(record)}
}

func toNFTListResponse(records []entities.Record) httptransport.NFTListResponse {
	resp := httptransport.NFTListResponse{Status: "success", Data: make([]httptransport.NFTData, 0, len(records))}
	for _, record := range records {
		resp.Data = append(resp.Data, toNFTData(record))
	}
	return resp
}

func toNFTData(record entities.Record) httptransport.NFTData {
	return httptransport.NFTData{
		TokenID:     record.TokenID,
		Title:       record.Title,
		Creator:     record.Creator,
		Price:       record.DisplayPrice(),
		PriceAmount: record.PriceAmount,
		Currency:    record.PriceCurrency,
		Image:       record.ImageURL,
		Description: record.Description,
		Listed:      record.Listed,
		CreatedAt:   record.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   record.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
