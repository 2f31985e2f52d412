package handlers

import (
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"effica-project/backend/collab-service/logging"
	"effica-project/backend/collab-service/middleware"
	"effica-project/backend/collab-service/utils"
)

// callerIdentity resolves the authenticated caller from the request context.
// The guard runs before every protected handler, so a missing or mangled
// identity here means the token claims were not usable, not that the guard
// was skipped.
func callerIdentity(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, *utils.Claims, bool) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
		return primitive.NilObjectID, nil, false
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		logging.Logger.Warnf("Event ID: CLAIMS_INVALID_USER_ID, Description: Token carried a malformed user id %q: %v", claims.UserID, err)
		writeJSON(w, http.StatusForbidden, map[string]string{"message": "Invalid token"})
		return primitive.NilObjectID, nil, false
	}

	return userID, claims, true
}
