// Package mirror provides a read-only Hedera Mirror Node client for smart
// contract results. The erc8021 package uses it to read back the calldata
// of executed contract calls and recover their attribution suffixes.
//
// # Hedera Mirror Node
//
// REST API reference: https://docs.hedera.com/hedera/sdks-and-apis/rest-api
package mirror
