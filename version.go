package coinsorter

// Version is the CoinSorter release version, reported by the CLI's
// version command and embedded in rendered JSON documents.
const Version = "0.1.0"
