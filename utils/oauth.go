package utils

import (
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"JournalGo/config"
)

const googleCertsURL = "https://www.googleapis.com/oauth2/v3/certs"

// GoogleIdentity is the subset of ID-token claims the app keeps.
type GoogleIdentity struct {
	GoogleID string
	Email    string
	Name     string
	Picture  string
}

var googleClientID string

func init() {
	config, err := config.LoadConfig(".")
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	googleClientID = config.GoogleClientID
}

// VerifyGoogleIDToken validates a Google ID token against Google's public
// keys and returns the identity it asserts.
func VerifyGoogleIDToken(tokenString string) (*GoogleIdentity, error) {
	// Parse the header first to learn which key signed the token.
	token, _, err := new(jwt.Parser).ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %v", err)
	}

	kid, ok := token.Header["kid"].(string)
	if !ok {
		return nil, errors.New("token missing key id")
	}
	alg, _ := token.Header["alg"].(string)

	publicKey, err := getGooglePublicKey(kid)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch Google public key: %v", err)
	}

	parsedToken, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != alg {
			return nil, fmt.Errorf("unexpected signing algorithm: %v", token.Header["alg"])
		}
		return publicKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("token signature verification failed: %v", err)
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return nil, errors.New("invalid token")
	}

	if iss := claims["iss"]; iss != "https://accounts.google.com" && iss != "accounts.google.com" {
		return nil, errors.New("invalid issuer")
	}

	if claims["aud"] != googleClientID {
		return nil, errors.New("invalid audience")
	}

	exp, ok := claims["exp"].(float64)
	if !ok || time.Now().Unix() > int64(exp) {
		return nil, errors.New("token expired")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, errors.New("token missing subject")
	}

	identity := &GoogleIdentity{GoogleID: sub}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		identity.Name = name
	}
	if picture, ok := claims["picture"].(string); ok {
		identity.Picture = picture
	}

	return identity, nil
}

// getGooglePublicKey fetches Google's JWKS and returns the key matching kid.
func getGooglePublicKey(kid string) (*rsa.PublicKey, error) {
	resp, err := http.Get(googleCertsURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch JWKS: %v", err)
	}
	defer resp.Body.Close()

	var jwks struct {
		Keys []struct {
			Kid string `json:"kid"`
			Alg string `json:"alg"`
			Use string `json:"use"`
			N   string `json:"n"`
			E   string `json:"e"`
		} `json:"keys"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&jwks); err != nil {
		return nil, fmt.Errorf("failed to decode JWKS: %v", err)
	}

	var key *rsa.PublicKey
	for _, k := range jwks.Keys {
		if k.Kid == kid {
			nBytes, err := base64.RawURLEncoding.DecodeString(k.N)
			if err != nil {
				return nil, fmt.Errorf("failed to decode modulus: %v", err)
			}

			eBytes, err := base64.RawURLEncoding.DecodeString(k.E)
			if err != nil {
				return nil, fmt.Errorf("failed to decode exponent: %v", err)
			}

			e := int(new(big.Int).SetBytes(eBytes).Int64())
			key = &rsa.PublicKey{
				N: new(big.Int).SetBytes(nBytes),
				E: e,
			}
			break
		}
	}

	if key == nil {
		return nil, errors.New("no matching public key")
	}

	return key, nil
}
