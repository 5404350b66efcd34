// Package pharmacy implements the point-of-sale core of a single-outlet
// pharmacy: the product catalog with composite bundles, the customer ledger
// with its two reward tiers, order pricing, loyalty redemption, the order
// journal, and the text record store that ties them together between runs.
//
// The interactive application lives in the cmd package; this package never
// prompts and never prints, it only computes and persists.
package pharmacy
