// Package nftservice contains the Mintbay marketplace store: the single
// source of truth for NFT records and the mint/list/purchase/query
// operations layered over it.
//
// Chain interaction is simulated: mutations wait a configured latency and
// token ids / receipts are generated mock addresses. Domain and application
// logic stay decoupled from runtime concerns through ports and adapter
// composition.
package nftservice
