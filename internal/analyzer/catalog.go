package analyzer

// Catalogue de noms de jetons utilisé quand le client ne fournit pas de nom.
// Mélange de noms plausibles et de noms ouvertement frauduleux.
var defaultTokenNames = []string{
	"SafeMoon", "ElonDoge", "ShibaRocket", "MetaVerse Inu", "CryptoGem",
	"MoonShot", "DiamondHands", "YieldFarm Pro", "DeFi Swap", "ChainLink Ultra",
	"SolanaMax", "AvalancheX", "PolygonPro", "ArbitrumGo", "OptimismPlus",
	"UniSwapV4", "PancakeMax", "CurveDAO", "AaveVault", "CompoundMax",
	"BabyDoge", "FlokiX", "PepeCoin", "WojackToken", "RektCoin",
	"RugPull Finance", "HoneypotDAO", "PumpNDump", "ScamSwap", "FakeYield",
}

// Sous-chaînes qui déclenchent la pénalité lexicale (comparaison insensible à la casse)
var scamSubstrings = []string{"rug", "honeypot", "pump", "dump", "scam", "fake"}

// Pools de raisons par niveau de risque
var highRiskReasons = []string{
	"Unverified smart contract source code",
	"Top 5 wallets hold 85%+ of supply",
	"Liquidity pool is under $10,000",
	"No social media presence found",
	"Contract has hidden mint function",
	"Deployer wallet linked to known rug pulls",
	"Honeypot pattern detected in transfer function",
	"No audit from recognized firms",
}

var mediumRiskReasons = []string{
	"Limited trading history (<30 days)",
	"Moderate holder concentration (top 10 hold 40%)",
	"Social accounts created recently",
	"Low but present liquidity ($10k-$100k)",
	"Team is pseudonymous",
	"Whitepaper lacks technical depth",
}

var lowRiskReasons = []string{
	"Verified contract on block explorer",
	"Active community with 10k+ members",
	"Audited by CertiK / Hacken",
	"Healthy liquidity distribution",
	"Team is publicly doxxed",
	"Listed on major exchanges",
}
