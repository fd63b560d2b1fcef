package graphql

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/feral-file/ff-partner-ledger/internal/api/shared/constants"
	apierrors "github.com/feral-file/ff-partner-ledger/internal/api/shared/errors"
)

//go:embed schema.graphql
var schemaSDL string

var parsedSchema = gqlparser.MustLoadSchema(&ast.Source{Name: "schema.graphql", Input: schemaSDL})

// executableSchema serves Query fields from the resolver and projects each
// result onto the requested selection set
type executableSchema struct {
	resolver *Resolver
}

// NewExecutableSchema binds the ledger schema to a resolver
func NewExecutableSchema(resolver *Resolver) graphql.ExecutableSchema {
	return &executableSchema{resolver: resolver}
}

func (es *executableSchema) Schema() *ast.Schema {
	return parsedSchema
}

// Complexity weighs a ledger page by its limit so large pages count against the query budget
func (es *executableSchema) Complexity(ctx context.Context, typeName, field string, childComplexity int, args map[string]any) (int, bool) {
	if typeName == "Query" && field == "ledger" {
		limit, err := intArg(args, "limit", constants.DEFAULT_LEDGER_LIMIT)
		if err != nil || limit <= 0 || limit > constants.MAX_PAGE_SIZE {
			limit = constants.MAX_PAGE_SIZE
		}
		return 1 + childComplexity*limit, true
	}
	return 0, false
}

func (es *executableSchema) Exec(ctx context.Context) graphql.ResponseHandler {
	opCtx := graphql.GetOperationContext(ctx)
	if opCtx.Operation.Operation != ast.Query {
		return graphql.OneShot(graphql.ErrorResponse(ctx, "Only queries are supported"))
	}

	first := true
	return func(ctx context.Context) *graphql.Response {
		if !first {
			return nil
		}
		first = false
		return &graphql.Response{Data: es.execQuery(ctx, opCtx)}
	}
}

func (es *executableSchema) execQuery(ctx context.Context, opCtx *graphql.OperationContext) json.RawMessage {
	fields := graphql.CollectFields(opCtx, opCtx.Operation.SelectionSet, []string{"Query"})

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeJSON(&buf, field.Alias)
		buf.WriteByte(':')
		if field.Name == "__typename" {
			writeJSON(&buf, "Query")
			continue
		}
		buf.Write(es.execField(ctx, opCtx, field))
	}
	buf.WriteByte('}')
	return buf.Bytes()
}

// execField resolves one root field. Errors are reported on the field's path and null it.
func (es *executableSchema) execField(ctx context.Context, opCtx *graphql.OperationContext, field graphql.CollectedField) []byte {
	args := field.ArgumentMap(opCtx.Variables)
	ctx = graphql.WithFieldContext(ctx, &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		Args:       args,
		IsResolver: true,
	})

	value, err := es.resolve(ctx, field.Name, args)
	if err != nil {
		graphql.AddError(ctx, err)
		return []byte("null")
	}

	out, err := project(opCtx, value, field)
	if err != nil {
		graphql.AddError(ctx, err)
		return []byte("null")
	}
	return out
}

func (es *executableSchema) resolve(ctx context.Context, name string, args map[string]any) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = RecoverFunc(ctx, r)
		}
	}()

	switch name {
	case "partner":
		id, err := requiredUUIDArg(args, "id")
		if err != nil {
			return nil, err
		}
		return es.resolver.Partner(ctx, id)

	case "ledger":
		partnerID, err := requiredUUIDArg(args, "partner_id")
		if err != nil {
			return nil, err
		}
		kind, err := accountKindArg(args, "kind")
		if err != nil {
			return nil, err
		}
		limit, err := intArg(args, "limit", constants.DEFAULT_LEDGER_LIMIT)
		if err != nil {
			return nil, err
		}
		offset, err := intArg(args, "offset", constants.DEFAULT_OFFSET)
		if err != nil {
			return nil, err
		}
		return es.resolver.Ledger(ctx, partnerID, kind, limit, offset)

	case "referral_tree":
		partnerID, err := requiredUUIDArg(args, "partner_id")
		if err != nil {
			return nil, err
		}
		depth, err := intArg(args, "depth", constants.DEFAULT_REFERRAL_DEPTH)
		if err != nil {
			return nil, err
		}
		return es.resolver.ReferralTree(ctx, partnerID, depth)

	case "active_cycle":
		partnerID, err := uuidArg(args, "partner_id")
		if err != nil {
			return nil, err
		}
		return es.resolver.ActiveCycle(ctx, partnerID)

	case "cycle":
		number, err := intArg(args, "number", 0)
		if err != nil {
			return nil, err
		}
		return es.resolver.Cycle(ctx, int64(number))
	}

	return nil, apierrors.NewBadRequestError(fmt.Sprintf("Unknown field %q", name))
}
