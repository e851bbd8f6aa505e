/*
Package wallet implements the balance ledger: the only code path that
mutates an account's monetary balance.

Every mutation runs as one failure-atomic unit. The account row is read
under an exclusive lock, the new balance is computed and validated
against the account type's floor rule, the account is saved, and one
immutable audit record is appended, all inside a single database
transaction. A committed balance change always has exactly one matching
audit record, and a rejected change leaves no trace of either.

Usage:

	svc := wallet.NewService(repo, cache, wallet.Config{}, nil)

	account, err := svc.CreateAccount(ctx, "Alice", models.AccountTypeStandard)

	// Credit 50.00 (minor units)
	result, err := svc.UpdateBalance(ctx, account.ID, 5000, models.OperationCredit, txID)

	// Advisory pre-check; the authoritative check happens under lock.
	ok, err := svc.HasSufficientFunds(ctx, account.ID, 5000)

Balance reads are served cache-first and give no concurrency guarantee;
two callers may both observe sufficient funds and then only one succeed
at mutation time.
*/
package wallet
