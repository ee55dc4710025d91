package crypto

// AlgorithmRSA represents the textbook RSA encryption/signature algorithm
const AlgorithmRSA = "RSA"

// PrimalityTestFermat selects the Fermat probabilistic primality test
const PrimalityTestFermat = "fermat"

// PrimalityTestMillerRabin selects the Miller-Rabin probabilistic primality test
const PrimalityTestMillerRabin = "miller-rabin"

// DefaultPrimeBitLength is the size in bits of each generated prime
const DefaultPrimeBitLength = 256

// DefaultPrimalityRounds is the number of probabilistic rounds run per candidate
const DefaultPrimalityRounds = 64

// DefaultMaxAttempts bounds every resampling loop during key generation
const DefaultMaxAttempts = 10000

// PrimesFileName holds p and q as decimal lines
const PrimesFileName = "p_q.txt"

// PublicKeyFileName holds e and n as decimal lines
const PublicKeyFileName = "e_n.txt"

// PrivateKeyFileName holds d and n as decimal lines
const PrivateKeyFileName = "d_n.txt"

// SignedFileExtension is appended to the name of a signed file
const SignedFileExtension = ".signed"
