/*
Package igp implements an interchain gas paymaster: a chain side component that quotes
and accepts payments for the gas a relayer spends delivering a message on a destination
domain. Payments are quoted from per domain remote gas data, recorded cumulatively per
message and destination, held in the module account and released to each paymaster's
beneficiary on claim. Overhead paymasters wrap a paymaster and add a per domain gas
overhead to every quote and payment they forward.
*/
package igp
