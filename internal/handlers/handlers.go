package handlers

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kamau-dev/butchery-backend/internal/auth"
)

var adminGate *auth.Gate

// Init wires the admin gate constructed at startup. Tests call it with a
// gate of their own the same way they swap the store.
func Init(gate *auth.Gate) {
	adminGate = gate
}

func init() {
	// Report validation failures under json field names rather than Go
	// struct field names.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// bindingErrorBody turns a ShouldBindJSON failure into a client error with
// per-field detail where the validator provides it.
func bindingErrorBody(err error) gin.H {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(gin.H, len(verrs))
		for _, fe := range verrs {
			if fe.Param() != "" {
				fields[fe.Field()] = fe.Tag() + "=" + fe.Param()
			} else {
				fields[fe.Field()] = fe.Tag()
			}
		}
		return gin.H{"error": "validation failed", "fields": fields}
	}
	return gin.H{"error": err.Error()}
}

// serializeDoc makes a stored document JSON-friendly: the ObjectID becomes
// its hex string and known timestamp fields become RFC 3339 strings.
func serializeDoc(doc bson.M) bson.M {
	if doc == nil {
		return doc
	}
	if oid, ok := doc["_id"].(primitive.ObjectID); ok {
		doc["_id"] = oid.Hex()
	}
	for _, key := range []string{"created_at", "updated_at"} {
		switch v := doc[key].(type) {
		case primitive.DateTime:
			doc[key] = v.Time().UTC().Format(time.RFC3339)
		case time.Time:
			doc[key] = v.UTC().Format(time.RFC3339)
		}
	}
	return doc
}

func serializeDocs(docs []bson.M) []bson.M {
	out := make([]bson.M, 0, len(docs))
	for _, doc := range docs {
		out = append(out, serializeDoc(doc))
	}
	return out
}
