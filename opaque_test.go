// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024-2026 Nyx Crypto Contributors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package opaque

import (
	"errors"
	"testing"
)

func mustServerConfig(t *testing.T, config Config) *ServerConfig {
	t.Helper()

	sc, err := NewServerConfig(config)
	if err != nil {
		t.Fatalf("NewServerConfig: %v", err)
	}

	return sc
}

func mustClientConfig(t *testing.T, config Config, expected *PublicKey) *ClientConfig {
	t.Helper()

	cc, err := NewClientConfig(config, expected)
	if err != nil {
		t.Fatalf("NewClientConfig: %v", err)
	}

	return cc
}

func registerAccount(t *testing.T, serverConfig *ServerConfig, clientConfig *ClientConfig, password []byte) (ClientFile, *ServerFile, ExportKey) {
	t.Helper()

	client, request, err := Register(clientConfig, password)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	server, response, err := serverConfig.Register(request)
	if err != nil {
		t.Fatalf("ServerConfig.Register: %v", err)
	}

	clientFile, finalization, exportKey, err := client.Finish(response)
	if err != nil {
		t.Fatalf("ClientRegistration.Finish: %v", err)
	}

	serverFile, err := server.Finish(finalization)
	if err != nil {
		t.Fatalf("ServerRegistration.Finish: %v", err)
	}

	return clientFile, serverFile, exportKey
}

// S1: happy path — register then log in, same ClientFile and ExportKey.
func TestBasic(t *testing.T) {
	password := []byte("password")
	serverConfig := mustServerConfig(t, DefaultConfig())
	pk := serverConfig.PublicKey()
	clientConfig := mustClientConfig(t, DefaultConfig(), &pk)

	clientFile, serverFile, exportKey1 := registerAccount(t, serverConfig, clientConfig, password)

	client, request, err := Login(clientConfig, &clientFile, password)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	server, response, err := serverConfig.Login(serverFile, request)
	if err != nil {
		t.Fatalf("ServerConfig.Login: %v", err)
	}

	newClientFile, finalization, exportKey2, err := client.Finish(response)
	if err != nil {
		t.Fatalf("ClientLogin.Finish: %v", err)
	}

	if err := server.Finish(finalization); err != nil {
		t.Fatalf("ServerLogin.Finish: %v", err)
	}

	if !newClientFile.Equal(clientFile) {
		t.Errorf("client file changed across login")
	}

	if !exportKey2.Equal(exportKey1) {
		t.Errorf("export key changed across login")
	}
}

// Property 3 (consistency): the export key from registration equals the one
// from a subsequent login with no ClientFile pinned, mirroring
// original_source's `consistency` test.
func TestConsistency(t *testing.T) {
	password := []byte("password")
	serverConfig := mustServerConfig(t, DefaultConfig())
	clientConfig := mustClientConfig(t, DefaultConfig(), nil)

	_, serverFile, exportKey1 := registerAccount(t, serverConfig, clientConfig, password)

	client, request, err := Login(clientConfig, nil, password)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	_, response, err := serverConfig.Login(serverFile, request)
	if err != nil {
		t.Fatalf("ServerConfig.Login: %v", err)
	}

	_, _, exportKey2, err := client.Finish(response)
	if err != nil {
		t.Fatalf("ClientLogin.Finish: %v", err)
	}

	if !exportKey2.Equal(exportKey1) {
		t.Errorf("export key not stable across registration and login")
	}
}

// S2: wrong password collapses to ErrCredentials.
func TestWrongPassword(t *testing.T) {
	serverConfig := mustServerConfig(t, DefaultConfig())
	clientConfig := mustClientConfig(t, DefaultConfig(), nil)

	_, serverFile, _ := registerAccount(t, serverConfig, clientConfig, []byte("right password"))

	client, request, err := Login(clientConfig, nil, []byte("wrong password"))
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	_, response, err := serverConfig.Login(serverFile, request)
	if err != nil {
		t.Fatalf("ServerConfig.Login: %v", err)
	}

	if _, _, _, err := client.Finish(response); !errors.Is(err, ErrCredentials) {
		t.Fatalf("want ErrCredentials, got %v", err)
	}
}

// S3: login against an absent ServerFile still produces a well-formed
// response; the client must still see ErrCredentials, not a distinct signal.
func TestNoRegisteredUser(t *testing.T) {
	serverConfig := mustServerConfig(t, DefaultConfig())
	clientConfig := mustClientConfig(t, DefaultConfig(), nil)

	client, request, err := Login(clientConfig, nil, []byte("password"))
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	_, response, err := serverConfig.Login(nil, request)
	if err != nil {
		t.Fatalf("ServerConfig.Login with no file: %v", err)
	}

	if _, _, _, err := client.Finish(response); !errors.Is(err, ErrCredentials) {
		t.Fatalf("want ErrCredentials, got %v", err)
	}
}

// S4: a ClientConfig pinned to the wrong server's public key must reject
// registration with ErrInvalidServer.
func TestWrongServerAtRegistration(t *testing.T) {
	serverConfig := mustServerConfig(t, DefaultConfig())
	serverConfigWrong := mustServerConfig(t, DefaultConfig())
	wrongPK := serverConfigWrong.PublicKey()
	clientConfig := mustClientConfig(t, DefaultConfig(), &wrongPK)

	client, request, err := Register(clientConfig, []byte("password"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, response, err := serverConfig.Register(request)
	if err != nil {
		t.Fatalf("ServerConfig.Register: %v", err)
	}

	if _, _, _, err := client.Finish(response); !errors.Is(err, ErrInvalidServer) {
		t.Fatalf("want ErrInvalidServer, got %v", err)
	}
}

// S5: a ClientConfig pinned to the wrong server's public key must reject
// login with ErrInvalidServer, even with a valid ServerFile.
func TestWrongServerAtLogin(t *testing.T) {
	password := []byte("password")
	serverConfig := mustServerConfig(t, DefaultConfig())
	serverConfigWrong := mustServerConfig(t, DefaultConfig())

	_, serverFile, _ := registerAccount(t, serverConfig, mustClientConfig(t, DefaultConfig(), nil), password)

	wrongPK := serverConfigWrong.PublicKey()
	clientConfig := mustClientConfig(t, DefaultConfig(), &wrongPK)

	client, request, err := Login(clientConfig, nil, password)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	_, response, err := serverConfig.Login(serverFile, request)
	if err != nil {
		t.Fatalf("ServerConfig.Login: %v", err)
	}

	if _, _, _, err := client.Finish(response); !errors.Is(err, ErrInvalidServer) {
		t.Fatalf("want ErrInvalidServer, got %v", err)
	}
}

// S6: a ServerFile produced under a different ServerConfig is rejected at
// ServerLogin.Login with ErrServerFile.
func TestMigratedServerFile(t *testing.T) {
	password := []byte("password")
	serverConfig := mustServerConfig(t, DefaultConfig())
	serverConfigWrong := mustServerConfig(t, DefaultConfig())
	clientConfig := mustClientConfig(t, DefaultConfig(), nil)

	_, serverFile, _ := registerAccount(t, serverConfig, clientConfig, password)

	_, request, err := Login(clientConfig, nil, password)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if _, _, err := serverConfigWrong.Login(serverFile, request); !errors.Is(err, ErrServerFile) {
		t.Fatalf("want ErrServerFile, got %v", err)
	}
}

// S7: a ClientConfig's expected key and a ClientFile's pinned key
// disagreeing must fail ErrConfigPublicKey.
func TestDisagreeingClientInputs(t *testing.T) {
	password := []byte("password")
	serverConfigA := mustServerConfig(t, DefaultConfig())
	serverConfigB := mustServerConfig(t, DefaultConfig())

	pkA := serverConfigA.PublicKey()
	clientConfigA := mustClientConfig(t, DefaultConfig(), &pkA)
	_, _, _ = registerAccount(t, serverConfigA, clientConfigA, password)

	pkB := serverConfigB.PublicKey()
	clientConfigB := mustClientConfig(t, DefaultConfig(), &pkB)
	clientFileB, _, _ := registerAccount(t, serverConfigB, clientConfigB, password)

	if _, _, err := Login(clientConfigA, &clientFileB, password); !errors.Is(err, ErrConfigPublicKey) {
		t.Fatalf("want ErrConfigPublicKey, got %v", err)
	}
}

// Property 2 (cipher-suite invariance): a sample of permitted tuples, covering
// every AKE group, OPRF group, hash family, and MHF family, each completes a
// full register/login round trip and agrees on ExportKey and ClientFile.
func TestCipherSuites(t *testing.T) {
	password := []byte("password")

	cases := []Config{
		mustConfig(t, AkeRistretto255, GroupRistretto255, HashSha2, NewArgon2Mhf(DefaultArgon2Params())),
		mustConfig(t, AkeRistretto255, GroupRistretto255, HashSha3, NewPbkdf2Mhf(DefaultPbkdf2Params())),
		mustConfig(t, AkeRistretto255, GroupRistretto255, HashBlake3, NewArgon2Mhf(DefaultArgon2Params())),
		mustConfig(t, AkeP256, GroupP256, HashSha2, NewArgon2Mhf(DefaultArgon2Params())),
		mustConfig(t, AkeP256, GroupP256, HashSha3, NewPbkdf2Mhf(DefaultPbkdf2Params())),
		mustConfig(t, AkeX25519, GroupRistretto255, HashBlake3, NewPbkdf2Mhf(DefaultPbkdf2Params())),
	}

	for _, cfg := range cases {
		cfg := cfg

		t.Run(cfg.String(), func(t *testing.T) {
			serverConfig := mustServerConfig(t, cfg)
			pk := serverConfig.PublicKey()
			clientConfig := mustClientConfig(t, cfg, &pk)

			clientFile, serverFile, exportKey1 := registerAccount(t, serverConfig, clientConfig, password)

			client, request, err := Login(clientConfig, &clientFile, password)
			if err != nil {
				t.Fatalf("Login: %v", err)
			}

			server, response, err := serverConfig.Login(serverFile, request)
			if err != nil {
				t.Fatalf("ServerConfig.Login: %v", err)
			}

			newClientFile, finalization, exportKey2, err := client.Finish(response)
			if err != nil {
				t.Fatalf("ClientLogin.Finish: %v", err)
			}

			if err := server.Finish(finalization); err != nil {
				t.Fatalf("ServerLogin.Finish: %v", err)
			}

			if !newClientFile.Equal(clientFile) {
				t.Errorf("client file changed across login")
			}

			if !exportKey2.Equal(exportKey1) {
				t.Errorf("export key changed across login")
			}
		})
	}
}

// Property 1: Config, PublicKey, ClientFile, ServerFile, and the six messages
// decode from their own Serialize output across a full registration and
// login. Messages are compared by Config and ServerFile by PublicKey; the
// one-shot state objects are not exercised here.
func TestSerializationRoundTrip(t *testing.T) {
	password := []byte("password")
	cfg := DefaultConfig()

	if decoded, rest, err := DeserializeConfig(cfg.Serialize()); err != nil || len(rest) != 0 || !decoded.Equal(cfg) {
		t.Fatalf("Config round-trip: decoded=%v rest=%d err=%v", decoded, len(rest), err)
	}

	serverConfig := mustServerConfig(t, cfg)
	pk := serverConfig.PublicKey()

	if decoded, err := DeserializePublicKey(pk.Serialize()); err != nil || !decoded.Equal(pk) {
		t.Fatalf("PublicKey round-trip: decoded=%v err=%v", decoded, err)
	}

	clientConfig := mustClientConfig(t, cfg, &pk)

	client, request, err := Register(clientConfig, password)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if decoded, err := DeserializeRegistrationRequest(request.Serialize()); err != nil || !decoded.Config().Equal(cfg) {
		t.Fatalf("RegistrationRequest round-trip: err=%v", err)
	}

	server, response, err := serverConfig.Register(request)
	if err != nil {
		t.Fatalf("ServerConfig.Register: %v", err)
	}

	if decoded, err := DeserializeRegistrationResponse(response.Serialize()); err != nil || !decoded.Config().Equal(cfg) {
		t.Fatalf("RegistrationResponse round-trip: err=%v", err)
	}

	clientFile, finalization, _, err := client.Finish(response)
	if err != nil {
		t.Fatalf("ClientRegistration.Finish: %v", err)
	}

	if decoded, err := DeserializeClientFile(clientFile.Serialize()); err != nil || !decoded.Equal(clientFile) {
		t.Fatalf("ClientFile round-trip: err=%v", err)
	}

	if decoded, err := DeserializeRegistrationFinalization(finalization.Serialize()); err != nil || !decoded.Config().Equal(cfg) {
		t.Fatalf("RegistrationFinalization round-trip: err=%v", err)
	}

	serverFile, err := server.Finish(finalization)
	if err != nil {
		t.Fatalf("ServerRegistration.Finish: %v", err)
	}

	decodedServerFile, err := DeserializeServerFile(serverFile.Serialize())
	if err != nil || !decodedServerFile.PublicKey().Equal(serverFile.PublicKey()) {
		t.Fatalf("ServerFile round-trip: err=%v", err)
	}

	loginClient, loginRequest, err := Login(clientConfig, &clientFile, password)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if decoded, err := DeserializeLoginRequest(loginRequest.Serialize()); err != nil || !decoded.Config().Equal(cfg) {
		t.Fatalf("LoginRequest round-trip: err=%v", err)
	}

	_, loginResponse, err := serverConfig.Login(serverFile, loginRequest)
	if err != nil {
		t.Fatalf("ServerConfig.Login: %v", err)
	}

	if decoded, err := DeserializeLoginResponse(loginResponse.Serialize()); err != nil || !decoded.Config().Equal(cfg) {
		t.Fatalf("LoginResponse round-trip: err=%v", err)
	}

	_, loginFinalization, _, err := loginClient.Finish(loginResponse)
	if err != nil {
		t.Fatalf("ClientLogin.Finish: %v", err)
	}

	if decoded, err := DeserializeLoginFinalization(loginFinalization.Serialize()); err != nil || !decoded.Config().Equal(cfg) {
		t.Fatalf("LoginFinalization round-trip: err=%v", err)
	}
}

// Property 4: the PublicKey observed by the client during registration equals
// the one observed during login equals ServerConfig.PublicKey.
func TestPublicKeyStability(t *testing.T) {
	password := []byte("password")
	serverConfig := mustServerConfig(t, DefaultConfig())
	pk := serverConfig.PublicKey()
	clientConfig := mustClientConfig(t, DefaultConfig(), &pk)

	client, request, err := Register(clientConfig, password)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	server, response, err := serverConfig.Register(request)
	if err != nil {
		t.Fatalf("ServerConfig.Register: %v", err)
	}

	clientFile, finalization, _, err := client.Finish(response)
	if err != nil {
		t.Fatalf("ClientRegistration.Finish: %v", err)
	}

	if !clientFile.ServerPublicKey().Equal(pk) {
		t.Errorf("registration-observed public key does not match ServerConfig.PublicKey")
	}

	serverFile, err := server.Finish(finalization)
	if err != nil {
		t.Fatalf("ServerRegistration.Finish: %v", err)
	}

	loginClient, loginRequest, err := Login(clientConfig, &clientFile, password)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	_, loginResponse, err := serverConfig.Login(serverFile, loginRequest)
	if err != nil {
		t.Fatalf("ServerConfig.Login: %v", err)
	}

	newClientFile, _, _, err := loginClient.Finish(loginResponse)
	if err != nil {
		t.Fatalf("ClientLogin.Finish: %v", err)
	}

	if !newClientFile.ServerPublicKey().Equal(pk) {
		t.Errorf("login-observed public key does not match ServerConfig.PublicKey")
	}
}

func mustConfig(t *testing.T, ake Ake, group Group, hsh Hash, mhf Mhf) Config {
	t.Helper()

	cfg, err := NewConfig(ake, group, hsh, mhf)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	return cfg
}

// Property 5 / config tagging: a message produced under one Config is
// rejected by an operation expecting another.
func TestConfigMismatchRejected(t *testing.T) {
	clientConfig := mustClientConfig(t, DefaultConfig(), nil)

	_, request, err := Register(clientConfig, []byte("password"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	other := mustConfig(t, AkeP256, GroupP256, HashSha2, NewArgon2Mhf(DefaultArgon2Params()))
	serverConfig := mustServerConfig(t, other)

	if _, _, err := serverConfig.Register(request); !errors.Is(err, ErrConfig) {
		t.Fatalf("want ErrConfig, got %v", err)
	}
}
