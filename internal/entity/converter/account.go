package converter

import (
	"bookmarks/internal/entity/db"
	"bookmarks/internal/entity/dto"
)

// AccountToSummary converts a db.Account to dto.AccountSummary.
func AccountToSummary(a *db.Account) dto.AccountSummary {
	if a == nil {
		return dto.AccountSummary{}
	}
	return dto.AccountSummary{
		ID:        a.ID,
		Username:  a.Username,
		CreatedAt: a.CreatedAt,
	}
}

// LoginLogsToItems converts login log rows.
func LoginLogsToItems(logs []db.LoginLog) []dto.LoginLogItem {
	items := make([]dto.LoginLogItem, len(logs))
	for i, l := range logs {
		items[i] = dto.LoginLogItem{
			ID:        l.ID,
			UserID:    l.UserID,
			Username:  l.Username,
			LoginTime: l.LoginTime,
			IPAddress: l.IPAddress,
			UserAgent: l.UserAgent,
		}
	}
	return items
}
