package auth

import "context"

// Claim - имя claim токена, в котором лежит ID субъекта.
type Claim string

const (
	UserClaim     Claim = "userId"
	EmployeeClaim Claim = "empId"
)

type ctxKey struct {
	claim Claim
}

func WithSubject(ctx context.Context, claim Claim, id int64) context.Context {
	return context.WithValue(ctx, ctxKey{claim: claim}, id)
}

func SubjectFromContext(ctx context.Context, claim Claim) (int64, bool) {
	id, ok := ctx.Value(ctxKey{claim: claim}).(int64)
	return id, ok
}

// UserID - ID покупателя, положенный middleware пользовательских маршрутов.
func UserID(ctx context.Context) (int64, bool) {
	return SubjectFromContext(ctx, UserClaim)
}

// EmployeeID - ID сотрудника, положенный middleware административных маршрутов.
func EmployeeID(ctx context.Context) (int64, bool) {
	return SubjectFromContext(ctx, EmployeeClaim)
}
