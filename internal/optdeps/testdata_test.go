package optdeps

// firefoxInfo is trimmed `pacman -Qi firefox` output.
const firefoxInfo = `Name            : firefox
Version         : 131.0-1
Description     : Fast, Private & Safe Web Browser
Architecture    : x86_64
URL             : https://www.mozilla.org/firefox/
Licenses        : MPL-2.0
Groups          : None
Provides        : None
Depends On      : gtk3  libxt  mime-types  dbus-glib  ffmpeg  nss  ttf-font  libpulse
Optional Deps   : networkmanager: Location detection via available WiFi networks [installed]
                  libnotify: Notification integration [installed]
                  pulseaudio: Audio support [installed]
                  speech-dispatcher: Text-to-Speech
                  hunspell-en_US: Spell checking, American English
Required By     : None
Optional For    : None
Conflicts With  : None
Replaces        : None
Installed Size  : 246.51 MiB
Packager        : Jan Alexander Steffens (heftig) <heftig@archlinux.org>
Install Reason  : Explicitly installed
`

// coreutilsInfo has no optional dependencies.
const coreutilsInfo = `Name            : coreutils
Version         : 9.5-1
Depends On      : glibc  acl  attr  gmp  libcap  openssl
Optional Deps   : None
Required By     : base  findutils
Install Reason  : Installed as a dependency for another package
`

// decoyInfo mentions the optional label inside its description.
const decoyInfo = `Name            : decoy
Description     : Lists Optional Deps nicely; Required By nobody
Depends On      : glibc
Optional Deps   : jq: JSON output
                  fzf: fuzzy picking [installed]
Required By     : None
`
