package common

// GetAccountFromArgs extracts the account name from request arguments,
// defaulting to "default". Accounts name the stored OAuth credential used
// for the calendar provider (default, work, personal).
func GetAccountFromArgs(args map[string]interface{}) string {
	if accountVal, ok := args["account"].(string); ok && accountVal != "" {
		return accountVal
	}
	return "default"
}
